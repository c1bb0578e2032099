package eval

import (
	"context"

	"github.com/dylanagreen/chrysaora/pkg/board"
)

// Evaluator is a static position evaluator: it scores a position without
// looking at any moves beyond it. Search is sequential and calls it from a
// single goroutine, so implementations need not be safe for concurrent use.
type Evaluator interface {
	// Evaluate returns the position's score from White's point of view,
	// in [-1, 1]. Search negates it per side to move.
	Evaluate(ctx context.Context, pos *board.Position) Score
}

// nominal is the classic material value, in pawns.
func nominal(k board.Kind) float32 {
	switch k {
	case board.Pawn:
		return 1
	case board.Knight, board.Bishop:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	default:
		return 0
	}
}

// Material is a material-difference evaluator, normalized into the
// evaluator's [-1, 1] contract by dividing by the material present on a
// fully-loaded board (sans kings), so that a two-queen advantage does not
// saturate the score.
type Material struct{}

const materialNorm = 2 * (8*1 + 2*3 + 2*3 + 2*5 + 9) // both sides' starting material

// Sum combines two ordinary evaluators by adding their scores, e.g. a base
// evaluator plus Random noise. Both operands must stay within [-1, 1]; the
// result is bounded to the same range without using Clamp, since Clamp
// leaves anything past WinScore alone on the assumption it is a mate
// sentinel, which a sum of two ordinary scores never is.
type Sum struct {
	A, B Evaluator
}

func (s Sum) Evaluate(ctx context.Context, pos *board.Position) Score {
	total := s.A.Evaluate(ctx, pos) + s.B.Evaluate(ctx, pos)
	switch {
	case total > WinScore:
		return WinScore
	case total < LossScore:
		return LossScore
	default:
		return total
	}
}

func (Material) Evaluate(ctx context.Context, pos *board.Position) Score {
	var total float32
	for r := board.Rank0; r < board.NumRanks; r++ {
		for f := board.File(0); f < board.NumFiles; f++ {
			pc := pos.PieceAt(board.NewSquare(f, r))
			if pc.IsEmpty() {
				continue
			}
			v := nominal(pc.Kind())
			if pc.Color() == board.Black {
				v = -v
			}
			total += v
		}
	}
	return Clamp(Score(total / materialNorm))
}
