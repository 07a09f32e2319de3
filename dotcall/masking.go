package dotcall

import (
	"math"

	"github.com/dotloop/hictile/matrix"
)

// maskNaN computes N = isNaN(ob) || isNaN(eb) as a 0/1 float indicator, and
// returns copies of ob and eb with every N==1 position zeroed, matching
// kernel.Convolve's precondition.
func maskNaN(ob, eb matrix.Matrix) (obMasked, ebMasked, n matrix.Matrix, err error) {
	if err := matrix.ValidateSameShape(ob, eb); err != nil {
		return nil, nil, nil, err
	}
	rows, cols := ob.Rows(), ob.Cols()

	obMasked, err = matrix.NewDense(rows, cols)
	if err != nil {
		return nil, nil, nil, err
	}
	ebMasked, err = matrix.NewDense(rows, cols)
	if err != nil {
		return nil, nil, nil, err
	}
	n, err = matrix.NewDense(rows, cols)
	if err != nil {
		return nil, nil, nil, err
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			ov, _ := ob.At(i, j)
			ev, _ := eb.At(i, j)
			if math.IsNaN(ov) || math.IsNaN(ev) {
				_ = n.Set(i, j, 1)
				// leave obMasked/ebMasked at their zero default
				continue
			}
			_ = obMasked.Set(i, j, ov)
			_ = ebMasked.Set(i, j, ev)
		}
	}
	return obMasked, ebMasked, n, nil
}

// reciprocal returns a copy of v with every finite non-zero element
// inverted; zero or NaN elements become NaN, so a downstream rescale
// correctly marks the affected bin bad instead of dividing by zero.
func reciprocal(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if x == 0 || math.IsNaN(x) {
			out[i] = math.NaN()
			continue
		}
		out[i] = 1 / x
	}
	return out
}
