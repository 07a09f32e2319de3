// Package matrix provides the dense float64 tile storage shared by the
// kernel and dotcall packages: a row-major Matrix abstraction, NaN-aware
// element-wise kernels, and the shape/nil validators every higher-level
// operation checks before doing numerical work.
//
// It carries no notion of genomic bins or kernels of its own — those
// live in kernel and dotcall — only the flat float64 storage and the
// small set of element-wise primitives (rescale, clip, closeness) that
// operate on it.
package matrix
