package aggregate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotloop/hictile/aggregate"
	"github.com/dotloop/hictile/dotcall"
	"github.com/dotloop/hictile/kernel"
	"github.com/dotloop/hictile/matrix"
	"github.com/dotloop/hictile/tile"
)

type constFetcher struct {
	n int
}

func (f constFetcher) FetchBalanced(_ context.Context, rows, cols tile.Range) (matrix.Matrix, matrix.Matrix, dotcall.Weights, error) {
	r, c := rows.Len(), cols.Len()
	ob, _ := matrix.NewDense(r, c)
	eb, _ := matrix.NewDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = ob.Set(i, j, 1)
			_ = eb.Set(i, j, 1)
		}
	}
	wi := make([]float64, r)
	wj := make([]float64, c)
	for i := range wi {
		wi[i] = 1
	}
	for j := range wj {
		wj[j] = 1
	}
	return ob, eb, dotcall.AsymmetricWeights(wi, wj), nil
}

func newProc(t *testing.T) *dotcall.TileProcessor {
	t.Helper()
	proc, err := dotcall.NewProcessor([]kernel.Kernel{kernel.Identity3x3()})
	require.NoError(t, err)
	return proc
}

// TestRun_DedupOverlappingWindows checks that pixels shared by two
// overlapping windows appear exactly once in the merged table.
func TestRun_DedupOverlappingWindows(t *testing.T) {
	windows := []tile.Window{
		{Rows: tile.Range{Start: 0, Stop: 8}, Cols: tile.Range{Start: 0, Stop: 8}},
		{Rows: tile.Range{Start: 4, Stop: 12}, Cols: tile.Range{Start: 4, Stop: 12}},
	}
	pixels, stats, err := aggregate.Run(context.Background(), windows, constFetcher{}, newProc(t), aggregate.WithWorkers(2))
	require.NoError(t, err)

	seen := make(map[[2]int]bool)
	for _, px := range pixels {
		key := [2]int{px.Bin1ID, px.Bin2ID}
		assert.False(t, seen[key], "duplicate pixel (%d,%d) in merged output", px.Bin1ID, px.Bin2ID)
		seen[key] = true
	}
	assert.Greater(t, stats.Duplicates, 0, "expected the overlapping region to produce duplicates")
}

// TestRun_SortedByBinIDs checks the final table is sorted by (bin1_id, bin2_id).
func TestRun_SortedByBinIDs(t *testing.T) {
	windows := []tile.Window{
		{Rows: tile.Range{Start: 0, Stop: 6}, Cols: tile.Range{Start: 0, Stop: 6}},
	}
	pixels, _, err := aggregate.Run(context.Background(), windows, constFetcher{}, newProc(t), aggregate.WithWorkers(3))
	require.NoError(t, err)
	for i := 1; i < len(pixels); i++ {
		prev, cur := pixels[i-1], pixels[i]
		less := prev.Bin1ID < cur.Bin1ID || (prev.Bin1ID == cur.Bin1ID && prev.Bin2ID <= cur.Bin2ID)
		assert.True(t, less, "pixels out of order at index %d: %+v then %+v", i, prev, cur)
	}
}

// TestRun_DiagBandFilter checks the diagonal-band filter restricts output
// to bin2_id-bin1_id within [min, max].
func TestRun_DiagBandFilter(t *testing.T) {
	windows := []tile.Window{
		{Rows: tile.Range{Start: 0, Stop: 8}, Cols: tile.Range{Start: 0, Stop: 8}},
	}
	pixels, _, err := aggregate.Run(context.Background(), windows, constFetcher{}, newProc(t), aggregate.WithDiagBand(2, 3))
	require.NoError(t, err)
	for _, px := range pixels {
		diag := px.Bin2ID - px.Bin1ID
		assert.True(t, diag >= 2 && diag <= 3, "pixel (%d,%d) diag=%d outside [2,3]", px.Bin1ID, px.Bin2ID, diag)
	}
}

func TestRun_NoWindows(t *testing.T) {
	_, _, err := aggregate.Run(context.Background(), nil, constFetcher{}, newProc(t))
	assert.ErrorIs(t, err, aggregate.ErrNoWindows)
}

func TestWithWorkers_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { aggregate.WithWorkers(0) })
}

func TestWithDiagBand_PanicsWhenMinExceedsMax(t *testing.T) {
	assert.Panics(t, func() { aggregate.WithDiagBand(5, 1) })
}
