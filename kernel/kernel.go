package kernel

import (
	"fmt"

	"github.com/dotloop/hictile/matrix"
)

// Kernel is a named, square, odd-sided dense weight array with a centred
// origin. The name becomes the la_exp.<name>.* output column suffix.
type Kernel struct {
	Name    string
	Weights matrix.Matrix
}

// New validates weights and returns a Kernel.
// Stage 1 (Validate): name non-empty, weights non-nil, square, odd side.
// Stage 2 (Finalize): wrap into Kernel.
func New(name string, weights matrix.Matrix) (Kernel, error) {
	if name == "" {
		return Kernel{}, ErrEmptyName
	}
	if err := matrix.ValidateNotNil(weights); err != nil {
		return Kernel{}, fmt.Errorf("kernel.New(%q): %w", name, err)
	}
	if err := matrix.ValidateOddSquare(weights); err != nil {
		if sqErr := matrix.ValidateSquare(weights); sqErr != nil {
			return Kernel{}, fmt.Errorf("kernel.New(%q): %w", name, ErrNotSquare)
		}
		return Kernel{}, fmt.Errorf("kernel.New(%q): %w", name, ErrNotOdd)
	}
	return Kernel{Name: name, Weights: weights}, nil
}

// Side returns the kernel's side length.
func (k Kernel) Side() int { return k.Weights.Rows() }

// Center returns the index of the kernel's centre cell along either axis.
func (k Kernel) Center() int { return k.Side() / 2 }

// Footprint returns the set of (row, col) offsets, relative to the centre,
// where the kernel is non-zero. Offsets range over [-center, center].
func (k Kernel) Footprint() [][2]int {
	c := k.Center()
	var offsets [][2]int
	for ky := 0; ky < k.Side(); ky++ {
		for kx := 0; kx < k.Side(); kx++ {
			v, _ := k.Weights.At(ky, kx)
			if v != 0 {
				offsets = append(offsets, [2]int{ky - c, kx - c})
			}
		}
	}
	return offsets
}

// Identity3x3 returns the single-centre-cell 3x3 kernel used by fixture S1
// and by callers that want a trivial no-op locally-adjusted expected.
func Identity3x3() Kernel {
	w, _ := matrix.NewDense(3, 3)
	_ = w.Set(1, 1, 1)
	k, _ := New("identity3x3", w)
	return k
}

// Donut7x7 returns a donut kernel: uniform weight over a 7x7 square minus
// its cross-shaped centre band and its own centre, the classic dot-calling
// kernel shape used to separate a pixel's local background from the
// horizontal/vertical stripe signal running through it.
func Donut7x7() Kernel {
	const n = 7
	w, _ := matrix.NewDense(n, n)
	c := n / 2
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == c || j == c {
				continue // exclude centre cross (stripe band)
			}
			_ = w.Set(i, j, 1)
		}
	}
	k, _ := New("donut", w)
	return k
}
