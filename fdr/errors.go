package fdr

import "errors"

var (
	// ErrInvalidAlpha indicates alpha is not in (0, 1].
	ErrInvalidAlpha = errors.New("fdr: alpha must be in (0, 1]")
)
