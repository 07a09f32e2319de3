package aggregate

import "errors"

var (
	// ErrNoWindows indicates Run was called with an empty window list.
	ErrNoWindows = errors.New("aggregate: no windows to process")

	// ErrInvalidDiagBand indicates diag_min > diag_max.
	ErrInvalidDiagBand = errors.New("aggregate: diag_min must be <= diag_max")

	// ErrInvalidWorkers indicates a non-positive worker count was supplied.
	ErrInvalidWorkers = errors.New("aggregate: workers must be > 0")
)
