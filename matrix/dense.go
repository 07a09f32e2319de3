package matrix

import "fmt"

// denseErrorf tags an index error with the Dense method and coordinates
// that triggered it, so a kernel.Convolve or dotcall.Process failure names
// the exact out-of-range (row, col) instead of just "index out of bounds".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense stores one tile of a Hi-C contact matrix: a fixed r x c block of
// balanced or raw float64 contact values, kept flat and row-major so the
// convolution hot loop (kernel.Convolve) and the element-wise rescale
// kernels (ewScaleCols, ewScaleRows, ...) can walk it with a single index
// instead of a nested slice-of-slices.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates an r x c tile of zeros. Every producer in this module
// (kernel.Convolve's outputs, dotcall's rescaled O_bal/E_raw, snippet's
// extracted windows) goes through this constructor rather than building a
// Dense literal directly, so ErrInvalidDimensions is caught in one place.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows reports the tile's row count.
func (m *Dense) Rows() int {
	return m.r
}

// Cols reports the tile's column count.
func (m *Dense) Cols() int {
	return m.c
}

// indexOf converts a (row, col) tile coordinate into its offset in the
// flat backing slice, or reports ErrIndexOutOfBounds tagged with method.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	return row*m.c + col, nil
}

// At reads the contact value at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set writes v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}
