package fdr

import (
	"math"
	"sort"
)

// Result is the outcome of a Benjamini-Hochberg pass.
type Result struct {
	// Reject reports, in the caller's original input order, whether each
	// p-value is rejected (a "dot" survives).
	Reject []bool

	// PMaxReject is the largest p-value in the reject set. HasPMaxReject
	// is false when the reject set is empty (threshold is undefined).
	PMaxReject    float64
	HasPMaxReject bool

	// PMinAccept is the smallest p-value in the accept set. HasPMinAccept
	// is false when the accept set is empty.
	PMinAccept    float64
	HasPMinAccept bool
}

// BenjaminiHochberg controls the false discovery rate at level alpha over
// pvalues.
//
// Algorithm: sort p-values ascending, compute the per-rank threshold
// alpha*k/N (1-indexed rank k, N=len(pvalues)), reject wherever the sorted
// p-value is <= its threshold, then invert the sort permutation so Reject
// is reported in the caller's original order.
//
// Non-finite p-values (NaN, ±Inf) are treated as 1.0 before sorting, per
// the never-reject policy for undefined significance: a non-finite input
// can never land in the reject set.
func BenjaminiHochberg(pvalues []float64, alpha float64) (Result, error) {
	if alpha <= 0 || alpha > 1 {
		return Result{}, ErrInvalidAlpha
	}
	n := len(pvalues)
	if n == 0 {
		return Result{Reject: []bool{}}, nil
	}

	sanitized := make([]float64, n)
	for i, p := range pvalues {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			sanitized[i] = 1.0
		} else {
			sanitized[i] = p
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sanitized[order[a]] < sanitized[order[b]]
	})

	rejectSorted := make([]bool, n)
	var maxReject float64
	hasMaxReject := false
	var minAccept float64
	hasMinAccept := false

	for rank, origIdx := range order {
		k := rank + 1 // 1-indexed rank
		threshold := alpha * float64(k) / float64(n)
		p := sanitized[origIdx]
		if p <= threshold {
			rejectSorted[rank] = true
			if !hasMaxReject || p > maxReject {
				maxReject = p
				hasMaxReject = true
			}
		} else {
			if !hasMinAccept || p < minAccept {
				minAccept = p
				hasMinAccept = true
			}
		}
	}

	reject := make([]bool, n)
	for rank, origIdx := range order {
		reject[origIdx] = rejectSorted[rank]
	}

	return Result{
		Reject:        reject,
		PMaxReject:    maxReject,
		HasPMaxReject: hasMaxReject,
		PMinAccept:    minAccept,
		HasPMinAccept: hasMinAccept,
	}, nil
}
