package tile

// Range is a half-open bin interval [Start, Stop) along one axis.
type Range struct {
	Start, Stop int
}

// Len returns Stop - Start.
func (r Range) Len() int {
	return r.Stop - r.Start
}

// Window is a square or rectangular tile: the cross product of a row
// Range and a column Range in absolute (chromosome-space) bin indices.
type Window struct {
	Rows Range
	Cols Range
}

// validateInterval checks the common [start, stop) + edge preconditions
// shared by both generators below.
func validateInterval(start, stop, edge int) error {
	if start >= stop {
		return ErrInvalidRange
	}
	if edge < 0 {
		return ErrInvalidEdge
	}

	return nil
}
