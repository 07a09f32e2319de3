package dotcall

import "errors"

var (
	// ErrInvalidWeights indicates the Weights value lacks a row or column
	// vector (an empty vector counts as absent). Vectors whose lengths
	// disagree with the tile's axes are reported as ErrShapeMismatch.
	ErrInvalidWeights = errors.New("dotcall: invalid weights")

	// ErrInvalidKernels indicates an empty kernel list was supplied to
	// NewProcessor.
	ErrInvalidKernels = errors.New("dotcall: invalid kernels")

	// ErrShapeMismatch indicates observed and expected tiles differ in
	// shape, or weight vector lengths disagree with the tile's axes.
	ErrShapeMismatch = errors.New("dotcall: shape mismatch")

	// ErrFetchFailure wraps an I/O or decoding error surfaced by a
	// MatrixFetcher.
	ErrFetchFailure = errors.New("dotcall: fetch failure")
)
