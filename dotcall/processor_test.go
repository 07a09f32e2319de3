package dotcall_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dotloop/hictile/dotcall"
	"github.com/dotloop/hictile/kernel"
	"github.com/dotloop/hictile/matrix"
	"github.com/dotloop/hictile/tile"
)

type fakeFetcher struct {
	oRaw, eBal matrix.Matrix
	w          dotcall.Weights
	err        error
}

func (f fakeFetcher) FetchBalanced(_ context.Context, _, _ tile.Range) (matrix.Matrix, matrix.Matrix, dotcall.Weights, error) {
	return f.oRaw, f.eBal, f.w, f.err
}

func onesTile(t *testing.T, n int) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, 1)
		}
	}
	return m
}

func onesVec(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

// TestProcess_S1IdentityKernel mirrors fixture S1: an all-ones 8x8 tile,
// unit weights, and the identity kernel must emit every upper-triangle
// pixel with la_exp.value == 1.0.
func TestProcess_S1IdentityKernel(t *testing.T) {
	const n = 8
	fetcher := fakeFetcher{
		oRaw: onesTile(t, n),
		eBal: onesTile(t, n),
		w:    dotcall.SymmetricWeights(onesVec(n)),
	}
	proc, err := dotcall.NewProcessor([]kernel.Kernel{kernel.Identity3x3()})
	if err != nil {
		t.Fatalf("NewProcessor: %v", err)
	}

	rng := tile.Range{Start: 0, Stop: n}
	pixels, err := proc.Process(context.Background(), fetcher, rng, rng)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	wantCount := n * (n - 1) / 2
	if len(pixels) != wantCount {
		t.Fatalf("pixel count = %d; want %d", len(pixels), wantCount)
	}
	for _, px := range pixels {
		if px.Bin1ID >= px.Bin2ID {
			t.Errorf("pixel (%d,%d) violates upper-triangle invariant", px.Bin1ID, px.Bin2ID)
		}
		res, ok := px.LaExp["identity3x3"]
		if !ok {
			t.Fatalf("pixel (%d,%d) missing identity3x3 kernel result", px.Bin1ID, px.Bin2ID)
		}
		if res.Value != 1.0 {
			t.Errorf("pixel (%d,%d) la_exp = %v; want 1.0", px.Bin1ID, px.Bin2ID, res.Value)
		}
	}
}

func TestProcess_InvalidWeights(t *testing.T) {
	const n = 4
	fetcher := fakeFetcher{
		oRaw: onesTile(t, n),
		eBal: onesTile(t, n),
		w:    dotcall.Weights{}, // zero value: neither vector set
	}
	proc, _ := dotcall.NewProcessor([]kernel.Kernel{kernel.Identity3x3()})
	rng := tile.Range{Start: 0, Stop: n}
	if _, err := proc.Process(context.Background(), fetcher, rng, rng); !errors.Is(err, dotcall.ErrInvalidWeights) {
		t.Errorf("want ErrInvalidWeights, got %v", err)
	}
}

func TestNewProcessor_RejectsEmptyKernels(t *testing.T) {
	if _, err := dotcall.NewProcessor(nil); !errors.Is(err, dotcall.ErrInvalidKernels) {
		t.Errorf("want ErrInvalidKernels, got %v", err)
	}
}

func TestProcess_FetchFailureWrapped(t *testing.T) {
	const n = 4
	cause := errors.New("boom")
	fetcher := fakeFetcher{err: cause}
	proc, _ := dotcall.NewProcessor([]kernel.Kernel{kernel.Identity3x3()})
	rng := tile.Range{Start: 0, Stop: n}
	_, err := proc.Process(context.Background(), fetcher, rng, rng)
	if !errors.Is(err, dotcall.ErrFetchFailure) {
		t.Errorf("want wrapped ErrFetchFailure, got %v", err)
	}
}

func TestProcess_ShapeMismatch(t *testing.T) {
	fetcher := fakeFetcher{
		oRaw: onesTile(t, 4),
		eBal: onesTile(t, 3),
		w:    dotcall.SymmetricWeights(onesVec(4)),
	}
	proc, _ := dotcall.NewProcessor([]kernel.Kernel{kernel.Identity3x3()})
	rng := tile.Range{Start: 0, Stop: 4}
	if _, err := proc.Process(context.Background(), fetcher, rng, rng); !errors.Is(err, dotcall.ErrShapeMismatch) {
		t.Errorf("want ErrShapeMismatch, got %v", err)
	}
}

// TestProcess_AllMaskedEmitsNoRows covers the boundary behaviour: a tile
// whose entire NaN mask is true emits zero rows.
func TestProcess_AllMaskedEmitsNoRows(t *testing.T) {
	const n = 4
	oRaw, _ := matrix.NewDense(n, n)
	eBal, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = eBal.Set(i, j, nan())
		}
	}
	fetcher := fakeFetcher{oRaw: oRaw, eBal: eBal, w: dotcall.SymmetricWeights(onesVec(n))}
	proc, _ := dotcall.NewProcessor([]kernel.Kernel{kernel.Identity3x3()})
	rng := tile.Range{Start: 0, Stop: n}
	pixels, err := proc.Process(context.Background(), fetcher, rng, rng)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(pixels) != 0 {
		t.Errorf("pixel count = %d; want 0 for fully masked tile", len(pixels))
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
