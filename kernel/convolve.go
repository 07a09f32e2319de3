package kernel

import (
	"fmt"
	"math"

	"github.com/dotloop/hictile/matrix"
)

// Convolve runs the locally-adjusted expected convolution for one kernel
// over a single tile.
//
// Inputs Ob, Eb, Er, N must share an identical shape: balanced observed,
// balanced expected, raw expected, and a NaN indicator (1 where Ob or Eb
// was NaN before the caller zeroed it, 0 otherwise). Ob and Eb must
// already have zeros at every N==1 position; Convolve does not mask them.
//
// Returns Ek_raw = Er * (KO / KE) and NN, the per-pixel count of masked or
// past-the-boundary positions inside the kernel's footprint, both the same
// shape as the inputs. Ek_raw is non-finite wherever KE is zero or
// non-finite; callers filter those pixels upstream, Convolve does not.
func Convolve(ob, eb, er, n matrix.Matrix, k Kernel) (ekRaw, nn matrix.Matrix, err error) {
	if err := matrix.ValidateNotNil(ob); err != nil {
		return nil, nil, fmt.Errorf("kernel.Convolve: %w", err)
	}
	if shapeErr := matrix.ValidateSameShape(ob, eb); shapeErr != nil {
		return nil, nil, fmt.Errorf("kernel.Convolve: %w", ErrShapeMismatch)
	}
	if shapeErr := matrix.ValidateSameShape(ob, er); shapeErr != nil {
		return nil, nil, fmt.Errorf("kernel.Convolve: %w", ErrShapeMismatch)
	}
	if shapeErr := matrix.ValidateSameShape(ob, n); shapeErr != nil {
		return nil, nil, fmt.Errorf("kernel.Convolve: %w", ErrShapeMismatch)
	}
	rows, cols := ob.Rows(), ob.Cols()
	if k.Side() > rows || k.Side() > cols {
		return nil, nil, fmt.Errorf("kernel.Convolve(%q): %w", k.Name, ErrKernelLargerThanTile)
	}

	ko, err := convolveZeroFill(ob, k)
	if err != nil {
		return nil, nil, fmt.Errorf("kernel.Convolve(%q): %w", k.Name, err)
	}
	ke, err := convolveZeroFill(eb, k)
	if err != nil {
		return nil, nil, fmt.Errorf("kernel.Convolve(%q): %w", k.Name, err)
	}
	nn, err = convolveMaskOneFill(n, k)
	if err != nil {
		return nil, nil, fmt.Errorf("kernel.Convolve(%q): %w", k.Name, err)
	}

	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, nil, fmt.Errorf("kernel.Convolve(%q): %w", k.Name, err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			koV, _ := ko.At(i, j)
			keV, _ := ke.At(i, j)
			erV, _ := er.At(i, j)
			v := erV * (koV / keV) // Inf/NaN when keV is 0 or non-finite, by design
			_ = out.Set(i, j, v)
		}
	}
	return out, nn, nil
}

// convolveZeroFill applies the flipped true-convolution kernel to X with
// zero boundary fill: out[i,j] = sum_{ky,kx} X[i+c-ky, j+c-kx] * K[ky,kx],
// treating any out-of-bounds X read as 0.
func convolveZeroFill(x matrix.Matrix, k Kernel) (matrix.Matrix, error) {
	return convolveBoundary(x, k.Weights, 0)
}

// convolveMaskOneFill convolves the NaN indicator n against the kernel's
// binary non-zero footprint (K != 0, as 0/1), with boundary fill 1 so
// pixels near the physical matrix edge are treated as surrounded by masked
// bins.
func convolveMaskOneFill(n matrix.Matrix, k Kernel) (matrix.Matrix, error) {
	side := k.Side()
	mask, err := matrix.NewDense(side, side)
	if err != nil {
		return nil, err
	}
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			v, _ := k.Weights.At(i, j)
			if v != 0 {
				_ = mask.Set(i, j, 1)
			}
		}
	}
	return convolveBoundary(n, mask, 1)
}

// convolveBoundary is the shared flipped-convolution loop; fill is the
// value substituted for any out-of-bounds read of x.
func convolveBoundary(x, weights matrix.Matrix, fill float64) (matrix.Matrix, error) {
	rows, cols := x.Rows(), x.Cols()
	side := weights.Rows()
	c := side / 2

	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var sum float64
			for ky := 0; ky < side; ky++ {
				ii := i + c - ky
				for kx := 0; kx < side; kx++ {
					wv, _ := weights.At(ky, kx)
					if wv == 0 {
						continue
					}
					jj := j + c - kx
					var xv float64
					if ii < 0 || ii >= rows || jj < 0 || jj >= cols {
						xv = fill
					} else {
						xv, _ = x.At(ii, jj)
						if math.IsNaN(xv) {
							xv = fill
						}
					}
					sum += xv * wv
				}
			}
			_ = out.Set(i, j, sum)
		}
	}
	return out, nil
}
