// Package fdr implements the Benjamini-Hochberg procedure for controlling
// the false discovery rate over a batch of p-values: sort ascending, reject
// where p_(k) <= alpha*k/N, then invert the sort permutation so the caller
// gets a reject mask in its original input order.
package fdr
