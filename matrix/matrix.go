// Package matrix is the float64 tile abstraction the rest of this module
// builds on: kernel.Convolve reads through it during the convolution hot
// loop, dotcall.TileProcessor rescales and masks through it, and
// expected.CisDiagonalAverages walks it diagonal by diagonal. Dense is the
// only storage this module ships; the interface exists so kernel/dotcall's
// numeric code never has to know that.
package matrix

// Matrix is a two-dimensional mutable array of float64 values, addressed
// by (row, col) in [0, Rows()) x [0, Cols()). At/Set report
// ErrIndexOutOfBounds rather than panicking, since every caller in this
// module (kernel, dotcall, expected, snippet) treats out-of-range tile
// coordinates as a recoverable, reportable error, not a programmer bug.
type Matrix interface {
	// Rows reports the row count. Complexity: O(1).
	Rows() int

	// Cols reports the column count. Complexity: O(1).
	Cols() int

	// At reads the element at (i, j). Complexity: O(1).
	At(i, j int) (float64, error)

	// Set writes v at (i, j). Complexity: O(1).
	Set(i, j int, v float64) error
}
