package eval_test

import (
	"context"
	"testing"

	"github.com/dylanagreen/chrysaora/pkg/board"
	"github.com/dylanagreen/chrysaora/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScorer struct {
	probs []float64
	err   error
}

func (f fakeScorer) ScoreBatch(ctx context.Context, batch []eval.Tensor) ([]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.probs, nil
}

func TestNeuralEvaluateRescalesProbability(t *testing.T) {
	n := eval.Neural{Scorer: fakeScorer{probs: []float64{0.75}}}
	score := n.Evaluate(context.Background(), board.NewInitialPosition())
	assert.Equal(t, eval.Score(0.5), score)
}

func TestNeuralEvaluateOnErrorReturnsZero(t *testing.T) {
	n := eval.Neural{Scorer: fakeScorer{err: eval.ErrNotConfigured}}
	score := n.Evaluate(context.Background(), board.NewInitialPosition())
	assert.Equal(t, eval.Score(0), score)
}

func TestNeuralEvaluateBatch(t *testing.T) {
	n := eval.Neural{Scorer: fakeScorer{probs: []float64{0, 0.5, 1}}}
	scores, err := n.EvaluateBatch(context.Background(), []*board.Position{
		board.NewInitialPosition(),
		board.NewInitialPosition(),
		board.NewInitialPosition(),
	})
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, eval.Score(-1), scores[0])
	assert.Equal(t, eval.Score(0), scores[1])
	assert.Equal(t, eval.Score(1), scores[2])
}

func TestNeuralEvaluateBatchMismatchedLengthErrors(t *testing.T) {
	n := eval.Neural{Scorer: fakeScorer{probs: []float64{0.5}}}
	_, err := n.EvaluateBatch(context.Background(), []*board.Position{
		board.NewInitialPosition(),
		board.NewInitialPosition(),
	})
	assert.Error(t, err)
}

func TestEncodeRoundTripsPiecePlacement(t *testing.T) {
	pos := board.NewInitialPosition()
	tensor := eval.Encode(pos)
	assert.Equal(t, int8(board.NewPiece(board.Rook, board.Black)), tensor[0][0])
	assert.Equal(t, int8(0), tensor[4][4])
}
