// Package dotcall implements TileProcessor: the per-tile orchestration that
// fetches a balanced observed/expected window, rescales it between raw and
// balanced representations, runs kernel.Convolve once per named kernel, and
// emits a sparsified upper-triangle pixel table.
//
// It owns no concurrency or cross-tile state — that lives in aggregate,
// which drives many TileProcessor.Process calls over a worker pool and
// reduces their outputs into one table.
package dotcall
