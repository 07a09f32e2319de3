package kernel_test

import (
	"math"
	"testing"

	"github.com/dotloop/hictile/kernel"
	"github.com/dotloop/hictile/matrix"
)

func onesTile(t *testing.T, rows, cols int) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			_ = m.Set(i, j, 1)
		}
	}
	return m
}

func zerosTile(t *testing.T, rows, cols int) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	return m
}

// TestConvolve_S1IdentityKernel mirrors fixture S1: an all-ones 8x8 tile
// under the single-centre-cell identity kernel must yield la_exp = 1.0
// everywhere, with zero masked neighbours in the interior.
func TestConvolve_S1IdentityKernel(t *testing.T) {
	ob := onesTile(t, 8, 8)
	eb := onesTile(t, 8, 8)
	er := onesTile(t, 8, 8)
	n := zerosTile(t, 8, 8)

	ek, nn, err := kernel.Convolve(ob, eb, er, n, kernel.Identity3x3())
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			v, _ := ek.At(i, j)
			if v != 1.0 {
				t.Errorf("la_exp(%d,%d) = %v; want 1.0", i, j, v)
			}
		}
	}

	// Interior pixels (away from the border) have a fully in-bounds
	// single-cell footprint, so zero masked neighbours.
	mid, _ := nn.At(4, 4)
	if mid != 0 {
		t.Errorf("interior nnans = %v; want 0", mid)
	}
}

// TestConvolve_KELeadsToNonFinite checks that a zero KE propagates to a
// non-finite Ek_raw, matching the upstream-filtered contract.
func TestConvolve_KELeadsToNonFinite(t *testing.T) {
	ob := onesTile(t, 5, 5)
	eb := zerosTile(t, 5, 5) // KE will be all zero
	er := onesTile(t, 5, 5)
	n := zerosTile(t, 5, 5)

	ek, _, err := kernel.Convolve(ob, eb, er, n, kernel.Identity3x3())
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	v, _ := ek.At(2, 2)
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		t.Errorf("Ek_raw with KE=0 = %v; want NaN or Inf", v)
	}
}

// TestConvolve_NaNIndicatorBoundary verifies a pixel at the physical edge
// accumulates masked-neighbour counts from the one-fill boundary policy,
// while an interior pixel whose whole footprint stays in-bounds does not.
func TestConvolve_NaNIndicatorBoundary(t *testing.T) {
	const size = 9 // >= donut's 7x7 side, leaving a 3x3 block of fully-interior pixels
	ob := onesTile(t, size, size)
	eb := onesTile(t, size, size)
	er := onesTile(t, size, size)
	n := zerosTile(t, size, size)

	donut := kernel.Donut7x7()
	_, nn, err := kernel.Convolve(ob, eb, er, n, donut)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	// Corner (0,0): the donut's radius-3 footprint reaches past every
	// physical edge, so the one-fill boundary policy counts several
	// masked neighbours.
	corner, _ := nn.At(0, 0)
	if corner <= 0 {
		t.Errorf("corner nnans = %v; want > 0 near the physical edge", corner)
	}
	// Centre (4,4): the donut's radius-3 footprint fits entirely inside
	// the 9x9 tile, so no boundary fill is ever applied.
	center, _ := nn.At(4, 4)
	if center != 0 {
		t.Errorf("centre nnans = %v; want 0 when the footprint stays in-bounds", center)
	}
}

func TestNew_RejectsNonSquareAndEven(t *testing.T) {
	rect, _ := matrix.NewDense(3, 5)
	if _, err := kernel.New("rect", rect); err == nil {
		t.Error("expected error for non-square weights")
	}
	even, _ := matrix.NewDense(4, 4)
	if _, err := kernel.New("even", even); err == nil {
		t.Error("expected error for even side length")
	}
}

func TestConvolve_ShapeMismatch(t *testing.T) {
	ob := onesTile(t, 4, 4)
	eb := onesTile(t, 3, 3)
	er := onesTile(t, 4, 4)
	n := zerosTile(t, 4, 4)
	if _, _, err := kernel.Convolve(ob, eb, er, n, kernel.Identity3x3()); err == nil {
		t.Error("expected shape mismatch error")
	}
}
