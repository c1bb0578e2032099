package search_test

import (
	"context"
	"testing"

	"github.com/dylanagreen/chrysaora/pkg/board"
	"github.com/dylanagreen/chrysaora/pkg/board/fen"
	"github.com/dylanagreen/chrysaora/pkg/eval"
	"github.com/dylanagreen/chrysaora/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchReturnsErrNoMoveOnCheckmate(t *testing.T) {
	pos, active, _, _, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	_, err = search.Search(context.Background(), pos, active, eval.Material{}, search.Options{Depth: 2})
	assert.ErrorIs(t, err, search.ErrNoMove)
}

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move: Ra8 boxes the cornered king for back-rank mate.
	pos, active, _, _, err := fen.Decode("7k/6pp/8/8/8/8/8/R5K1 w - - 0 1")
	require.NoError(t, err)

	result, err := search.Search(context.Background(), pos, active, eval.Material{}, search.Options{Depth: 2})
	require.NoError(t, err)

	assert.True(t, eval.IsMateScore(result.Score))
	assert.True(t, result.Score > 0)
}

func TestSearchClampsDepthBelowOne(t *testing.T) {
	pos := board.NewInitialPosition()
	result, err := search.Search(context.Background(), pos, board.White, eval.Material{}, search.Options{Depth: 0})
	require.NoError(t, err)
	assert.NotZero(t, result.Nodes)
}

type batchRecorder struct {
	batchCalls int
}

func (b *batchRecorder) Evaluate(ctx context.Context, pos *board.Position) eval.Score {
	panic("frontier nodes must use EvaluateBatch, not Evaluate")
}

func (b *batchRecorder) EvaluateBatch(ctx context.Context, positions []*board.Position) ([]eval.Score, error) {
	b.batchCalls++
	out := make([]eval.Score, len(positions))
	return out, nil
}

func TestSearchPrefersBatchEvaluator(t *testing.T) {
	pos := board.NewInitialPosition()
	rec := &batchRecorder{}

	result, err := search.Search(context.Background(), pos, board.White, rec, search.Options{Depth: 1, BatchSize: 4})
	require.NoError(t, err)
	assert.NotZero(t, result.Nodes)
	assert.True(t, rec.batchCalls > 0)
}
