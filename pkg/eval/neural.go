package eval

import (
	"context"
	"fmt"

	"github.com/dylanagreen/chrysaora/pkg/board"
)

// Tensor is a position encoded the way an external neural evaluator expects
// it: an 8x8 grid of signed piece values, Rank0 first, matching Position's
// own layout exactly so encoding a batch is a pure copy.
type Tensor [8][8]int8

// Encode converts a position to its tensor encoding.
func Encode(pos *board.Position) Tensor {
	var t Tensor
	for r := board.Rank0; r < board.NumRanks; r++ {
		for f := board.File(0); f < board.NumFiles; f++ {
			t[r][f] = int8(pos.PieceAt(board.NewSquare(f, r)))
		}
	}
	return t
}

// Scorer is the boundary to an out-of-process or otherwise opaque neural
// evaluator: it scores a batch of encoded positions in one call, returning
// one White-relative win probability in [0, 1] per input, in order. Search
// batches leaf evaluations to this interface so that a real implementation
// can exploit batched inference.
type Scorer interface {
	ScoreBatch(ctx context.Context, batch []Tensor) ([]float64, error)
}

// Neural adapts a batched Scorer to the Evaluator interface for single-
// position use (e.g. at the root). Batched callers should use ScoreBatch
// directly rather than Evaluate in a loop.
type Neural struct {
	Scorer Scorer
}

func (n Neural) Evaluate(ctx context.Context, pos *board.Position) Score {
	probs, err := n.Scorer.ScoreBatch(ctx, []Tensor{Encode(pos)})
	if err != nil || len(probs) != 1 {
		return 0
	}
	// probs[i] is P(White wins); rescale the [0, 1] probability into the
	// signed [-1, 1] evaluator contract.
	return Clamp(Score(probs[0]*2 - 1))
}

// ErrNotConfigured is returned by a Scorer stub that has no backing model
// wired in.
var ErrNotConfigured = fmt.Errorf("neural evaluator not configured")

// EvaluateBatch scores a whole frontier of positions in a single call to
// the underlying Scorer, which is the point of keeping Scorer batch-shaped
// in the first place. Search detects this method via a structural
// interface and prefers it over Evaluate when available.
func (n Neural) EvaluateBatch(ctx context.Context, positions []*board.Position) ([]Score, error) {
	batch := make([]Tensor, len(positions))
	for i, pos := range positions {
		batch[i] = Encode(pos)
	}
	probs, err := n.Scorer.ScoreBatch(ctx, batch)
	if err != nil {
		return nil, err
	}
	if len(probs) != len(positions) {
		return nil, fmt.Errorf("scorer returned %d scores for %d positions", len(probs), len(positions))
	}
	out := make([]Score, len(probs))
	for i, p := range probs {
		out[i] = Clamp(Score(p*2 - 1))
	}
	return out, nil
}
