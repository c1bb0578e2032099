package eval

import (
	"context"
	"math/rand"

	"github.com/dylanagreen/chrysaora/pkg/board"
)

// Greedy picks a move directly rather than scoring positions: it prefers a
// move that delivers immediate checkmate, else any capture, else any legal
// move. It implements search.MoveChooser, so search.Search defers to it
// entirely instead of running alpha-beta. The zero value breaks ties by
// always taking the first move in generation order; NewGreedy gives ties a
// uniform random choice, matching the reference engine's random.choice.
type Greedy struct {
	rand *rand.Rand
}

func NewGreedy(seed int64) Greedy {
	return Greedy{rand: rand.New(rand.NewSource(seed))}
}

// ChooseMove implements search.MoveChooser.
func (g Greedy) ChooseMove(ctx context.Context, pos *board.Position, color board.Color, moves []board.Move) (board.Move, error) {
	opp := color.Opponent()

	var captures []board.Move
	for _, m := range moves {
		child := pos.ApplyMove(m)
		if len(child.LegalMoves(opp)) == 0 && child.IsInCheck(opp) {
			return m, nil
		}
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}

	if len(captures) > 0 {
		return captures[g.pick(len(captures))], nil
	}
	return moves[g.pick(len(moves))], nil
}

func (g Greedy) pick(n int) int {
	if g.rand == nil {
		return 0
	}
	return g.rand.Intn(n)
}

// Evaluate lets Greedy satisfy eval.Evaluator so it can be constructed and
// plugged in the same way as Material or Random (e.g. engine.WithEvaluator).
// search.Search never reaches it in practice, since Greedy's ChooseMove
// short-circuits search before any position is scored.
func (g Greedy) Evaluate(ctx context.Context, pos *board.Position) Score {
	return Material{}.Evaluate(ctx, pos)
}
