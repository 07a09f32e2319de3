// Package matrix: shape/nil preconditions shared by every numeric entry
// point in this module — kernel.Convolve and kernel.New check their inputs
// here before touching a single float64, as do dotcall.TileProcessor.Process
// and expected.CisDiagonalAverages.
package matrix

import "fmt"

// ValidateNotNil rejects a nil Matrix. Every exported function below and
// in kernel/dotcall/expected calls this first, since a nil interface value
// satisfying Matrix would otherwise panic on its first Rows()/At() call.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return fmt.Errorf("matrix.ValidateNotNil: %w", ErrNilMatrix)
	}
	return nil
}

// ValidateSameShape checks that a and b cover identical (rows, cols). This
// is the precondition kernel.Convolve enforces pairwise across Ob/Eb/Er/N,
// and dotcall uses to confirm a fetched observed/expected pair line up
// before rescaling either one.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return fmt.Errorf("matrix.ValidateSameShape: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return fmt.Errorf("matrix.ValidateSameShape: %w", err)
	}

	rowsA, colsA := a.Rows(), a.Cols()
	rowsB, colsB := b.Rows(), b.Cols()
	if rowsA != rowsB {
		return fmt.Errorf("matrix.ValidateSameShape: %d != %d rows: %w", rowsA, rowsB, ErrMatrixDimensionMismatch)
	}
	if colsA != colsB {
		return fmt.Errorf("matrix.ValidateSameShape: %d != %d cols: %w", colsA, colsB, ErrMatrixDimensionMismatch)
	}
	return nil
}

// ValidateSquare checks that m has Rows() == Cols(). expected.CisDiagonalAverages
// calls this on the balanced window it's handed (diagonal averaging is
// undefined on a non-square window); kernel.New calls it as half of its
// odd-square kernel-weights check.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("matrix.ValidateSquare: %w", err)
	}
	r, c := m.Rows(), m.Cols()
	if r != c {
		return fmt.Errorf("matrix.ValidateSquare: %dx%d: %w", r, c, ErrMatrixDimensionMismatch)
	}
	return nil
}

// ValidateOddSquare checks that m is square with an odd side length — the
// shape every convolution kernel must have so it has a single, unambiguous
// centre cell. kernel.New is the sole caller; Identity3x3/Donut7x7 both
// satisfy it by construction.
func ValidateOddSquare(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("matrix.ValidateOddSquare: %w", err)
	}
	if m.Rows()%2 == 0 {
		return fmt.Errorf("matrix.ValidateOddSquare: side %d is even: %w", m.Rows(), ErrMatrixDimensionMismatch)
	}
	return nil
}
