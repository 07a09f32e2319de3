// Package hictile is the core of a locally-adjusted-expected dot-calling
// engine for balanced, symmetric Hi-C contact matrices.
//
// 🧬 What is hictile?
//
//	A tile-streaming convolution core that turns a chromosome's balanced
//	contact matrix plus a global expected profile into a sparsified table
//	of candidate loop pixels, ready for Poisson significance testing,
//	FDR control, and spatial clustering:
//
//	  • tile        — diagonal-band and square tile-coordinate generators
//	  • kernel      — named convolution kernels + the convolution core
//	  • dotcall     — per-tile locally-adjusted-expected processor
//	  • aggregate   — tile concatenation, dedup, and global filters
//	  • fdr         — Benjamini–Hochberg multiple-testing control
//	  • cluster     — proximity clustering of surviving pixels
//	  • expected    — per-window expected estimation (MatrixFetcher's helper)
//	  • snippet     — peak/TAD/flame-stripe snippet and score helpers
//
// Under the hood, everything is organized under per-concern subpackages;
// this root package holds no exported code of its own.
//
// See SPEC_FULL.md for the full module-by-module design and DESIGN.md for
// the grounding behind each implementation choice.
//
//	go get github.com/dotloop/hictile
package hictile
