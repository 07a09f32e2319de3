package expected

import "math"

// Profile is the global expected lookup consumed by MatrixFetcher
// implementations: a mapping from diagonal offset to expected value,
// materialised once from CisDiagonalAverages (or from a genome-wide
// estimator external to this module) and then reused across many tile
// fetches.
type Profile struct {
	avg []float64
}

// NewProfile builds a Profile from per-diagonal statistics.
func NewProfile(stats []DiagStat) Profile {
	avg := make([]float64, len(stats))
	for i, s := range stats {
		avg[i] = s.Avg
	}
	return Profile{avg: avg}
}

// At returns the expected value at diagonal offset d, or NaN if d is
// outside the profile's computed range.
func (p Profile) At(d int) float64 {
	if d < 0 || d >= len(p.avg) {
		return math.NaN()
	}
	return p.avg[d]
}

// Len reports the number of diagonal offsets the profile covers.
func (p Profile) Len() int { return len(p.avg) }

// ExpandBalanced materialises a dense E_bal tile of shape (rows x cols):
// entry (i, j) is p.At(|bin1 - bin2|) for the tile's absolute bin
// coordinates bin1 = rowStart+i, bin2 = colStart+j.
func (p Profile) ExpandBalanced(rowStart, colStart, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		bin1 := rowStart + i
		for j := 0; j < cols; j++ {
			bin2 := colStart + j
			d := bin2 - bin1
			if d < 0 {
				d = -d
			}
			out[i][j] = p.At(d)
		}
	}
	return out
}
