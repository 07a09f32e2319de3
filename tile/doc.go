// Package tile generates the coordinate streams that drive chunked,
// bounded-memory processing of a chromosome's contact matrix.
//
// It has no I/O and allocates no matrices: a Window is a pair of
// half-open [start, stop) bin ranges, nothing more. Two generators are
// provided:
//
//   - Diagonal: covers a diagonal band of given width with overlapping
//     square windows, skipping the upper-left extremum (dot-calling
//     never looks at the main diagonal).
//   - Squares: covers an entire [start, stop) interval with a grid of
//     square windows, optionally shifting boundary tiles to keep a
//     constant receptive field.
//
// Complexity: O(S/band) and O((S/tile_size)^2) windows respectively,
// each O(1) to produce.
package tile
