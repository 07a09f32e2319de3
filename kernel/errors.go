package kernel

import "errors"

var (
	// ErrNotSquare indicates a kernel's weight array is not r==c.
	ErrNotSquare = errors.New("kernel: weights must be square")

	// ErrNotOdd indicates a kernel's side length is even; kernels need a
	// centred origin.
	ErrNotOdd = errors.New("kernel: side length must be odd")

	// ErrEmptyName indicates a kernel was constructed with an empty name;
	// names become output column suffixes and must be non-empty.
	ErrEmptyName = errors.New("kernel: name must not be empty")

	// ErrShapeMismatch indicates the four tiles passed to Convolve do not
	// share an identical shape.
	ErrShapeMismatch = errors.New("kernel: tile shapes do not match")

	// ErrKernelLargerThanTile indicates a kernel's side exceeds the tile's
	// smaller dimension, so no pixel can have a fully in-bounds footprint.
	ErrKernelLargerThanTile = errors.New("kernel: kernel larger than tile")
)
