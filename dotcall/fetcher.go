package dotcall

import (
	"context"

	"github.com/dotloop/hictile/matrix"
	"github.com/dotloop/hictile/tile"
)

// MatrixFetcher is the consumed external contract: given a tile's row and
// column ranges, it returns the dense raw observed tile, the dense balanced
// expected tile of the same shape, and the balancing weights that apply to
// it. Implementations construct Weights themselves — SymmetricWeights for a
// diagonal-origin tile, AsymmetricWeights otherwise — since only the
// fetcher knows the tile's relationship to the chromosome's main diagonal.
//
// Fetchers that touch persistent storage should honour ctx cancellation;
// Process does not retry on error.
type MatrixFetcher interface {
	FetchBalanced(ctx context.Context, rows, cols tile.Range) (oRaw, eBal matrix.Matrix, w Weights, err error)
}
