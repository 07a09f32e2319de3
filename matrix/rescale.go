package matrix

// ScaleCols returns a copy of X with column j multiplied by scale[j].
func ScaleCols(X Matrix, scale []float64) (Matrix, error) {
	return ewScaleCols(X, scale)
}

// ScaleRows returns a copy of X with row i multiplied by scale[i].
func ScaleRows(X Matrix, scale []float64) (Matrix, error) {
	return ewScaleRows(X, scale)
}

// ReplaceInfNaN returns a copy of X with every {±Inf, NaN} element set to val.
func ReplaceInfNaN(X Matrix, val float64) (Matrix, error) {
	return ewReplaceInfNaN(X, val)
}

// ClipRange returns a copy of X clamped into [lo, hi].
func ClipRange(X Matrix, lo, hi float64) (Matrix, error) {
	return ewClipRange(X, lo, hi)
}

// AllClose reports whether a and b are element-wise close within the given
// relative and absolute tolerances.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
