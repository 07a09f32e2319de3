package snippet

import "errors"

var (
	ErrStallIndexOutOfRange      = errors.New("snippet: stall index out of range")
	ErrWindowOutOfBounds         = errors.New("snippet: window out of bounds")
	ErrMaxDistanceExceedsSnippet = errors.New("snippet: max distance exceeds snippet size")
	ErrInvalidDelta              = errors.New("snippet: delta too large for tad size")
	ErrNegativeDelta             = errors.New("snippet: delta must be >= 0")
)
