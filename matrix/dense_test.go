package matrix_test

import (
	"errors"
	"testing"

	"github.com/dotloop/hictile/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	if _, err := matrix.NewDense(0, 3); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("rows=0: want ErrInvalidDimensions, got %v", err)
	}
	if _, err := matrix.NewDense(3, -1); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("cols=-1: want ErrInvalidDimensions, got %v", err)
	}
}

func TestDense_SetAt(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if err := m.Set(1, 2, 7.5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := m.At(1, 2)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if got != 7.5 {
		t.Errorf("At(1,2) = %v; want 7.5", got)
	}
}

func TestDense_OutOfBounds(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	if _, err := m.At(2, 0); !errors.Is(err, matrix.ErrIndexOutOfBounds) {
		t.Errorf("row==rows: want ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := m.At(0, -1); !errors.Is(err, matrix.ErrIndexOutOfBounds) {
		t.Errorf("col<0: want ErrIndexOutOfBounds, got %v", err)
	}
	if err := m.Set(5, 5, 1); !errors.Is(err, matrix.ErrIndexOutOfBounds) {
		t.Errorf("Set out of bounds: want ErrIndexOutOfBounds, got %v", err)
	}
}
