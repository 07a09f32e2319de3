// Package snippet implements the stall-indexed matrix-slicing helpers used
// to pull fixed-geometry windows (peak, TAD, flame-stripe) out of a dense
// contact matrix and score them against their own local background.
//
// None of it touches bins, kernels, or balancing weights directly — every
// function here operates on a matrix.Matrix already handed to it and a
// sorted list of stall positions (structural-feature bin coordinates, e.g.
// convergent CTCF sites) supplied by the caller. Where the TAD helpers index
// a closed interval (stalls[i]:stalls[i+1] inclusive of both ends) that is
// deliberate: preserve it rather than "fixing" it to half-open semantics.
package snippet
