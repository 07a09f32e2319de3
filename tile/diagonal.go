package tile

// Diagonal generates the square windows that cover a diagonal band of
// width band across the half-open interval [start, stop), each padded
// by edge bins so that convolution of radius <= edge stays correct for
// every pixel strictly inside the band.
//
// For t in {1, ..., ceil(size/band)-1}, it emits the window
//
//	[max(0, band*(t-1)-edge), min(size, band*(t+1)+edge)) + start
//
// on both axes. The upper-left extremum (t=0) is skipped deliberately:
// dot-calling never looks at the main diagonal. Consecutive windows
// overlap by band+2*edge on each axis (away from the clipped ends).
//
// Complexity: O(ceil(size/band)) windows, each produced in O(1).
func Diagonal(start, stop, band, edge int) ([]Window, error) {
	if err := validateInterval(start, stop, edge); err != nil {
		return nil, err
	}
	if band <= 0 {
		return nil, ErrInvalidBand
	}

	size := stop - start
	tiles := size / band
	if size%band != 0 {
		tiles++
	}

	windows := make([]Window, 0, tiles)
	for t := 1; t < tiles; t++ {
		lw := max(0, band*(t-1)-edge)
		rw := min(size, band*(t+1)+edge)
		r := Range{Start: lw + start, Stop: rw + start}
		windows = append(windows, Window{Rows: r, Cols: r})
	}

	return windows, nil
}
