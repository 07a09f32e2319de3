package tile

import "errors"

var (
	// ErrInvalidRange indicates start >= stop for a requested interval.
	ErrInvalidRange = errors.New("tile: start must be < stop")

	// ErrInvalidBand indicates a non-positive band width was requested.
	ErrInvalidBand = errors.New("tile: band must be > 0")

	// ErrInvalidTileSize indicates a non-positive tile size was requested.
	ErrInvalidTileSize = errors.New("tile: tile_size must be > 0")

	// ErrInvalidEdge indicates a negative edge overlap was requested.
	ErrInvalidEdge = errors.New("tile: edge must be >= 0")
)
