package cluster

import "errors"

var (
	// ErrInvalidThreshold indicates threshold_cluster is not > 0.
	ErrInvalidThreshold = errors.New("cluster: threshold_cluster must be > 0")
)
