// Package expected estimates a per-window expected profile from an
// already-balanced dense matrix: for cis contacts, the nanmean of every
// diagonal at or beyond ignore_diags (diagonals closer to the main
// diagonal are reported as NaN); for trans contacts, a single blockwise
// nanmean over the whole window.
//
// This mirrors cooltools' diagsum/blocksum arithmetic over a dense window,
// not the genome-wide expected estimator driven off a cooler store's raw
// pair counts — materialising E_bal from a persistent store is external to
// this module (see dotcall.MatrixFetcher).
package expected
