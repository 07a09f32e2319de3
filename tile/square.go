package tile

// Squares generates a grid of windows covering the entire half-open
// interval [start, stop) with tile_size-wide squares, each padded by
// edge bins on every side (clipped at the interval boundary).
//
// When square is true and a boundary tile along an axis would be
// narrower than tile_size+edge, that tile is shifted left/up so its
// width becomes exactly tile_size+edge: boundary tiles then overlap
// their predecessor more than interior tiles do, preserving a constant
// receptive field at the cost of some redundant recomputation. When
// square is false, the trailing tile is simply narrower and coverage
// stays disjoint apart from the edge overlap.
//
// Complexity: O(ceil(size/tile_size)^2) windows, each produced in O(1).
func Squares(start, stop, tileSize, edge int, square bool) ([]Window, error) {
	if err := validateInterval(start, stop, edge); err != nil {
		return nil, err
	}
	if tileSize <= 0 {
		return nil, ErrInvalidTileSize
	}

	size := stop - start
	tiles := size / tileSize
	if size%tileSize != 0 {
		tiles++
	}

	windows := make([]Window, 0, tiles*tiles)
	for tx := 0; tx < tiles; tx++ {
		lwx := max(0, tileSize*tx-edge)
		rwx := min(size, tileSize*(tx+1)+edge)
		if square && rwx >= size {
			lwx = size - tileSize - edge
		}

		for ty := 0; ty < tiles; ty++ {
			lwy := max(0, tileSize*ty-edge)
			rwy := min(size, tileSize*(ty+1)+edge)
			if square && rwy >= size {
				lwy = size - tileSize - edge
			}

			windows = append(windows, Window{
				Rows: Range{Start: lwx + start, Stop: rwx + start},
				Cols: Range{Start: lwy + start, Stop: rwy + start},
			})
		}
	}

	return windows, nil
}
