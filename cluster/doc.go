// Package cluster implements proximity clustering of accepted pixels into
// labelled centroids: two pixels within threshold_cluster of each other
// join the same cluster, transitively, via a BFS over the pixel index
// space — the same flat-index BFS shape gridgraph.ConnectedComponents uses
// for contiguous grid regions, adapted here to an arbitrary point set where
// neighbours are determined by Euclidean distance rather than a fixed
// 4/8-offset grid.
package cluster
