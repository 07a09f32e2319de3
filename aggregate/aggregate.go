package aggregate

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/dotloop/hictile/dotcall"
	"github.com/dotloop/hictile/tile"
)

// Stats reports bookkeeping counters gathered while reducing per-tile
// tables into the final table: how many tiles emitted zero rows (every
// pixel masked) and how many duplicate pixels were dropped across
// overlapping tile edges.
type Stats struct {
	DegenerateTiles int
	Duplicates      int
}

// Run drives windows through a bounded worker pool, one TileProcessor.Process
// call per window, then reduces the per-tile pixel tables into a single
// table: deduplicated by (bin1_id, bin2_id) keeping the first occurrence in
// window order, filtered by the configured diagonal band and NaN-footprint
// cap, and sorted by (bin1_id, bin2_id).
//
// The result is independent of worker count or tile completion order: the
// dedup/filter/sort reduction runs only after every window has finished,
// keyed by each window's position in the input slice rather than arrival
// order.
func Run(ctx context.Context, windows []tile.Window, fetcher dotcall.MatrixFetcher, proc *dotcall.TileProcessor, opts ...Option) ([]dotcall.Pixel, Stats, error) {
	if len(windows) == 0 {
		return nil, Stats{}, ErrNoWindows
	}
	o := gatherOptions(opts...)

	results := make([][]dotcall.Pixel, len(windows))
	degenerate := make([]bool, len(windows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for idx, w := range windows {
		idx, w := idx, w
		g.Go(func() error {
			pixels, err := proc.Process(gctx, fetcher, w.Rows, w.Cols)
			if err != nil {
				return err
			}
			results[idx] = pixels
			degenerate[idx] = len(pixels) == 0
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	var stats Stats
	for _, d := range degenerate {
		if d {
			stats.DegenerateTiles++
		}
	}

	seen := make(map[[2]int]struct{})
	merged := make([]dotcall.Pixel, 0, len(windows))
	for _, pixels := range results {
		for _, px := range pixels {
			key := [2]int{px.Bin1ID, px.Bin2ID}
			if _, dup := seen[key]; dup {
				stats.Duplicates++
				continue
			}
			seen[key] = struct{}{}

			diag := px.Bin2ID - px.Bin1ID
			if diag < o.diagMin || diag > o.diagMax {
				continue
			}
			if maxNNans(px) > o.nnansCap {
				continue
			}
			merged = append(merged, px)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Bin1ID != merged[j].Bin1ID {
			return merged[i].Bin1ID < merged[j].Bin1ID
		}
		return merged[i].Bin2ID < merged[j].Bin2ID
	})

	return merged, stats, nil
}

func maxNNans(px dotcall.Pixel) int {
	max := 0
	first := true
	for _, res := range px.LaExp {
		if first || res.NNans > max {
			max = res.NNans
			first = false
		}
	}
	return max
}
