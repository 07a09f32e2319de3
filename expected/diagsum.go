package expected

import (
	"math"

	"github.com/dotloop/hictile/matrix"
)

// DiagStat is one diagonal's (or, for trans, one block's) aggregate: the
// sum of its finite entries, how many entries were finite, and their mean.
// Avg is NaN whenever NValid is zero or the diagonal was dropped by
// ignoreDiags.
type DiagStat struct {
	Sum    float64
	NValid int
	Avg    float64
}

// CisDiagonalAverages computes, for every diagonal offset d in [0, n) of a
// square n x n balanced window, the nanmean of balanced[k, k+d] over
// k in [0, n-d). Diagonals with d < ignoreDiags are reported as NaN
// (Sum=NaN, NValid=0, Avg=NaN): cis dot-calling never trusts contacts
// closer than ignoreDiags to the main diagonal.
func CisDiagonalAverages(balanced matrix.Matrix, ignoreDiags int) ([]DiagStat, error) {
	if err := matrix.ValidateNotNil(balanced); err != nil {
		return nil, err
	}
	if ignoreDiags < 0 {
		return nil, ErrNegativeIgnoreDiags
	}
	if err := matrix.ValidateSquare(balanced); err != nil {
		return nil, ErrNotSquare
	}

	n := balanced.Rows()
	stats := make([]DiagStat, n)
	for d := 0; d < n; d++ {
		if d < ignoreDiags {
			stats[d] = DiagStat{Sum: math.NaN(), NValid: 0, Avg: math.NaN()}
			continue
		}
		var sum float64
		var count int
		for k := 0; k < n-d; k++ {
			v, _ := balanced.At(k, k+d)
			if math.IsNaN(v) {
				continue
			}
			sum += v
			count++
		}
		avg := math.NaN()
		if count > 0 {
			avg = sum / float64(count)
		}
		stats[d] = DiagStat{Sum: sum, NValid: count, Avg: avg}
	}
	return stats, nil
}

// TransBlockAverage computes a single nanmean over every finite entry of a
// (possibly non-square) balanced window, the blockwise expected used for
// trans contacts where no diagonal structure applies.
func TransBlockAverage(balanced matrix.Matrix) (DiagStat, error) {
	if err := matrix.ValidateNotNil(balanced); err != nil {
		return DiagStat{}, err
	}
	rows, cols := balanced.Rows(), balanced.Cols()
	var sum float64
	var count int
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := balanced.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			sum += v
			count++
		}
	}
	avg := math.NaN()
	if count > 0 {
		avg = sum / float64(count)
	}
	return DiagStat{Sum: sum, NValid: count, Avg: avg}, nil
}
