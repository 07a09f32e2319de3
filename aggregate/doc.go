// Package aggregate drives a TileStream through a bounded worker pool,
// concatenates the resulting pixel tables, deduplicates pixels that
// reappear across overlapping tile edges, applies the global diagonal-band
// and NaN-footprint-cap filters, and produces one table sorted by
// (bin1_id, bin2_id) — independent of worker count or tile arrival order.
package aggregate
