package snippet

import "github.com/dotloop/hictile/matrix"

// PeakSnippet extracts a square window centred on the pixel named by two
// stall-list entries: rows span stalls[stallIndex]-size..+size, columns
// span stalls[stallIndex+peakIndex]-size..+size.
func PeakSnippet(contact matrix.Matrix, stalls []int, stallIndex, peakIndex, size int) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(contact); err != nil {
		return nil, err
	}
	if !inRange(stalls, stallIndex) || !inRange(stalls, stallIndex+peakIndex) {
		return nil, ErrStallIndexOutOfRange
	}
	rowCenter := stalls[stallIndex]
	colCenter := stalls[stallIndex+peakIndex]
	return extract(contact, rowCenter-size, rowCenter+size, colCenter-size, colCenter+size)
}

// TADSnippet extracts the closed-interval square window between two
// consecutive stalls: contact[stalls[index]:stalls[index+1]+1, same cols].
// The upper bound is inclusive of stalls[index+1] on both axes; callers must
// not treat this as half-open.
func TADSnippet(contact matrix.Matrix, stalls []int, index int) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(contact); err != nil {
		return nil, err
	}
	if !inRange(stalls, index) || !inRange(stalls, index+1) {
		return nil, ErrStallIndexOutOfRange
	}
	lo, hi := stalls[index], stalls[index+1]
	return extract(contact, lo, hi+1, lo, hi+1)
}

// FlameSnippetVertical extracts the vertical flame window spanning from
// stalls[index]+edgeLength to stalls[index+1]-edgeLength in rows, centred on
// stalls[index+1] with half-width width in columns.
func FlameSnippetVertical(contact matrix.Matrix, stalls []int, index, width, edgeLength int) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(contact); err != nil {
		return nil, err
	}
	if !inRange(stalls, index) || !inRange(stalls, index+1) {
		return nil, ErrStallIndexOutOfRange
	}
	rowLo := stalls[index] + edgeLength
	rowHi := stalls[index+1] - edgeLength
	colCenter := stalls[index+1]
	return extract(contact, rowLo, rowHi, colCenter-width, colCenter+width)
}

// FlameSnippetHorizontal extracts the horizontal flame window centred on
// stalls[index] with half-width width in rows, spanning from
// stalls[index]+edgeLength to stalls[index+1]-edgeLength in columns.
func FlameSnippetHorizontal(contact matrix.Matrix, stalls []int, index, width, edgeLength int) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(contact); err != nil {
		return nil, err
	}
	if !inRange(stalls, index) || !inRange(stalls, index+1) {
		return nil, ErrStallIndexOutOfRange
	}
	rowCenter := stalls[index]
	colLo := stalls[index] + edgeLength
	colHi := stalls[index+1] - edgeLength
	return extract(contact, rowCenter-width, rowCenter+width, colLo, colHi)
}

func inRange(stalls []int, i int) bool {
	return i >= 0 && i < len(stalls)
}

// extract pulls the half-open window [rowLo,rowHi) x [colLo,colHi) out of
// contact into a fresh Dense matrix.
func extract(contact matrix.Matrix, rowLo, rowHi, colLo, colHi int) (matrix.Matrix, error) {
	if rowLo < 0 || colLo < 0 || rowHi > contact.Rows() || colHi > contact.Cols() || rowLo >= rowHi || colLo >= colHi {
		return nil, ErrWindowOutOfBounds
	}
	out, err := matrix.NewDense(rowHi-rowLo, colHi-colLo)
	if err != nil {
		return nil, err
	}
	for i := rowLo; i < rowHi; i++ {
		for j := colLo; j < colHi; j++ {
			v, _ := contact.At(i, j)
			_ = out.Set(i-rowLo, j-colLo, v)
		}
	}
	return out, nil
}
