package dotcall

import (
	"context"
	"fmt"
	"math"

	"github.com/dotloop/hictile/kernel"
	"github.com/dotloop/hictile/matrix"
	"github.com/dotloop/hictile/tile"
)

// TileProcessor orchestrates one tile: fetch, rescale, convolve per kernel,
// mask, emit. It holds an ordered list of (name, kernel) pairs rather than a
// map, so output column order is stable and the hot path never touches a
// hash map.
type TileProcessor struct {
	kernels []kernel.Kernel
}

// NewProcessor validates kernels and returns a TileProcessor.
// Stage 1 (Validate): the kernel list must be non-empty; each kernel was
// already validated square-and-odd by kernel.New.
func NewProcessor(kernels []kernel.Kernel) (*TileProcessor, error) {
	if len(kernels) == 0 {
		return nil, ErrInvalidKernels
	}
	cp := make([]kernel.Kernel, len(kernels))
	copy(cp, kernels)
	return &TileProcessor{kernels: cp}, nil
}

// Process runs one tile: fetch, rescale between raw and balanced, convolve
// once per configured kernel, mask, and emit the surviving upper-triangle
// pixels. rows and cols give the tile's row/column ranges in absolute
// (chromosome-space) bin coordinates.
//
// Idempotent: calling Process twice with an equivalent fetcher and
// identical ranges yields an equal pixel slice.
func (p *TileProcessor) Process(ctx context.Context, fetcher MatrixFetcher, rows, cols tile.Range) ([]Pixel, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	oRaw, eBal, w, err := fetcher.FetchBalanced(ctx, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("dotcall: %w: %w", ErrFetchFailure, err)
	}

	wi, wj, err := w.vectors()
	if err != nil {
		return nil, err
	}

	if err := matrix.ValidateSameShape(oRaw, eBal); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	if len(wi) != oRaw.Rows() || len(wj) != oRaw.Cols() {
		return nil, fmt.Errorf("%w: weight length %d/%d vs tile %dx%d",
			ErrShapeMismatch, len(wi), len(wj), oRaw.Rows(), oRaw.Cols())
	}

	oBal, err := rescaleOuter(oRaw, wi, wj)
	if err != nil {
		return nil, fmt.Errorf("dotcall: rescale observed: %w", err)
	}
	eRaw, err := rescaleOuter(eBal, reciprocal(wi), reciprocal(wj))
	if err != nil {
		return nil, fmt.Errorf("dotcall: rescale expected: %w", err)
	}

	oBalMasked, eBalMasked, nInd, err := maskNaN(oBal, eBal)
	if err != nil {
		return nil, fmt.Errorf("dotcall: mask: %w", err)
	}

	type kernelOut struct {
		ek matrix.Matrix
		nn matrix.Matrix
	}
	outs := make([]kernelOut, len(p.kernels))
	for ki, k := range p.kernels {
		ek, nn, err := kernel.Convolve(oBalMasked, eBalMasked, eRaw, nInd, k)
		if err != nil {
			return nil, fmt.Errorf("dotcall: convolve %q: %w", k.Name, err)
		}
		outs[ki] = kernelOut{ek: ek, nn: nn}
	}

	r, c := oRaw.Rows(), oRaw.Cols()
	pixels := make([]Pixel, 0, r*c)
	for i := 0; i < r; i++ {
		bin1 := rows.Start + i
		for j := 0; j < c; j++ {
			bin2 := cols.Start + j
			if bin1 >= bin2 {
				continue // invariant I1: upper triangle only
			}

			laExp := make(map[string]KernelResult, len(p.kernels))
			finite := true
			for ki, k := range p.kernels {
				v, _ := outs[ki].ek.At(i, j)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					finite = false
				}
				nn, _ := outs[ki].nn.At(i, j)
				laExp[k.Name] = KernelResult{Value: v, NNans: int(nn)}
			}
			if !finite {
				continue // invariant I2: drop pixels with any non-finite la_exp
			}

			obsRaw, _ := oRaw.At(i, j)
			expRaw, _ := eRaw.At(i, j)
			pixels = append(pixels, Pixel{
				Bin1ID: bin1,
				Bin2ID: bin2,
				ObsRaw: obsRaw,
				ExpRaw: expRaw,
				LaExp:  laExp,
			})
		}
	}
	return pixels, nil
}

// rescaleOuter computes out[i,j] = x[i,j] * wi[i] * wj[j].
func rescaleOuter(x matrix.Matrix, wi, wj []float64) (matrix.Matrix, error) {
	scaledCols, err := matrix.ScaleCols(x, wj)
	if err != nil {
		return nil, err
	}
	return matrix.ScaleRows(scaledCols, wi)
}
