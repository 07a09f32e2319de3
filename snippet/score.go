package snippet

import (
	"math"

	"github.com/dotloop/hictile/matrix"
)

// PeakCornerLowerLeft scores a peak snippet against its lower-left
// background corner: mean of the central peak_length square over mean of
// the background annulus below-left of it.
func PeakCornerLowerLeft(peak matrix.Matrix, peakLength, backgroundLength int) float64 {
	mid := peak.Rows() / 2
	center := nanMeanRegion(peak, mid-peakLength, mid+peakLength, mid-peakLength, mid+peakLength)
	background := nanMeanRegion(peak, mid+peakLength, mid+backgroundLength, mid-backgroundLength, mid-peakLength)
	return center / background
}

// PeakCornerLowerRight scores against the lower-right background corner.
func PeakCornerLowerRight(peak matrix.Matrix, peakLength, backgroundLength int) float64 {
	mid := peak.Rows() / 2
	center := nanMeanRegion(peak, mid-peakLength, mid+peakLength, mid-peakLength, mid+peakLength)
	background := nanMeanRegion(peak, mid+peakLength, mid+backgroundLength, mid+peakLength, mid+backgroundLength)
	return center / background
}

// PeakCornerUpperRight scores against the upper-right background corner.
func PeakCornerUpperRight(peak matrix.Matrix, peakLength, backgroundLength int) float64 {
	mid := peak.Rows() / 2
	center := nanMeanRegion(peak, mid-peakLength, mid+peakLength, mid-peakLength, mid+peakLength)
	background := nanMeanRegion(peak, mid-backgroundLength, mid-peakLength, mid+peakLength, mid+backgroundLength)
	return center / background
}

// PeakCornerUpperLeft scores against the upper-left background corner.
func PeakCornerUpperLeft(peak matrix.Matrix, peakLength, backgroundLength int) float64 {
	mid := peak.Rows() / 2
	center := nanMeanRegion(peak, mid-peakLength, mid+peakLength, mid-peakLength, mid+peakLength)
	background := nanMeanRegion(peak, mid-backgroundLength, mid-peakLength, mid-backgroundLength, mid-peakLength)
	return center / background
}

// PeakScore averages the four corner scores into a single aggregate peak
// pileup score (APA-style).
func PeakScore(peak matrix.Matrix, peakLength, backgroundLength int) float64 {
	return (PeakCornerUpperRight(peak, peakLength, backgroundLength) +
		PeakCornerLowerRight(peak, peakLength, backgroundLength) +
		PeakCornerUpperLeft(peak, peakLength, backgroundLength) +
		PeakCornerLowerLeft(peak, peakLength, backgroundLength)) / 4
}

// TADSectors extracts the two-TAD pile-up window spanning
// stalls[index]:stalls[index+2]+1 and builds the in-TAD / out-of-TAD boolean
// masks used by TADScore, trimmed by delta on every block edge and banded
// between diagOffset and maxDistance diagonals.
func TADSectors(contact matrix.Matrix, stalls []int, index, delta, diagOffset, maxDistance int) (pileCenter matrix.Matrix, inTad, outTad [][]bool, err error) {
	if err := matrix.ValidateNotNil(contact); err != nil {
		return nil, nil, nil, err
	}
	if !inRange(stalls, index) || !inRange(stalls, index+1) || !inRange(stalls, index+2) {
		return nil, nil, nil, ErrStallIndexOutOfRange
	}
	lo, hi := stalls[index], stalls[index+2]
	pileCenter, err = extract(contact, lo, hi+1, lo, hi+1)
	if err != nil {
		return nil, nil, nil, err
	}
	n := pileCenter.Rows()
	if maxDistance > n {
		return nil, nil, nil, ErrMaxDistanceExceedsSnippet
	}
	tadSize := stalls[index+1] - stalls[index] + 1
	secondTadSize := stalls[index+2] - stalls[index+1] + 1
	if delta < 0 {
		return nil, nil, nil, ErrNegativeDelta
	}
	if 2*delta >= tadSize || 2*delta >= secondTadSize {
		return nil, nil, nil, ErrInvalidDelta
	}

	inTad = make([][]bool, n)
	outTad = make([][]bool, n)
	for i := range inTad {
		inTad[i] = make([]bool, n)
		outTad[i] = make([]bool, n)
	}
	for i := delta; i < tadSize-delta; i++ {
		for j := delta; j < tadSize-delta; j++ {
			inTad[i][j] = true
		}
		for j := tadSize + delta; j < n-delta; j++ {
			outTad[i][j] = true
		}
	}
	for i := tadSize + delta; i < n-delta; i++ {
		for j := tadSize + delta; j < n-delta; j++ {
			inTad[i][j] = true
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := j - i
			if d < diagOffset || d > maxDistance {
				inTad[i][j] = false
				outTad[i][j] = false
			}
		}
	}
	return pileCenter, inTad, outTad, nil
}

// TADScore is the mean of the pile-up within the in-TAD mask over the mean
// within the out-of-TAD mask: a ratio above 1 indicates enrichment of
// contacts inside the domain relative to its flanks.
func TADScore(contact matrix.Matrix, stalls []int, index, delta, diagOffset, maxDistance int) (float64, error) {
	pileCenter, inTad, outTad, err := TADSectors(contact, stalls, index, delta, diagOffset, maxDistance)
	if err != nil {
		return math.NaN(), err
	}
	return maskedNanMean(pileCenter, inTad) / maskedNanMean(pileCenter, outTad), nil
}

// FlameScoreVertical is the mean contact value within flameThickness columns
// of the snippet's vertical centre over the mean within backgroundThickness
// columns of it.
func FlameScoreVertical(flame matrix.Matrix, flameThickness, backgroundThickness int) float64 {
	mid := flame.Cols() / 2
	ft, bt := flameThickness/2, backgroundThickness/2
	center := nanMeanRegion(flame, 0, flame.Rows(), mid-ft, mid+ft)
	background := nanMeanRegion(flame, 0, flame.Rows(), mid-bt, mid+bt)
	return center / background
}

// FlameScoreHorizontal is the horizontal-axis counterpart of
// FlameScoreVertical: it bands rows around the snippet's horizontal centre
// instead of columns.
func FlameScoreHorizontal(flame matrix.Matrix, flameThickness, backgroundThickness int) float64 {
	mid := flame.Rows() / 2
	ft, bt := flameThickness/2, backgroundThickness/2
	center := nanMeanRegion(flame, mid-ft, mid+ft, 0, flame.Cols())
	background := nanMeanRegion(flame, mid-bt, mid+bt, 0, flame.Cols())
	return center / background
}

func nanMeanRegion(m matrix.Matrix, rowLo, rowHi, colLo, colHi int) float64 {
	var sum float64
	var n int
	for i := rowLo; i < rowHi; i++ {
		for j := colLo; j < colHi; j++ {
			v, err := m.At(i, j)
			if err != nil || math.IsNaN(v) {
				continue
			}
			sum += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

func maskedNanMean(m matrix.Matrix, mask [][]bool) float64 {
	var sum float64
	var n int
	for i := range mask {
		for j := range mask[i] {
			if !mask[i][j] {
				continue
			}
			v, err := m.At(i, j)
			if err != nil || math.IsNaN(v) {
				continue
			}
			sum += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
