// Package search implements fixed-depth alpha-beta negamax search over a
// pluggable eval.Evaluator.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/dylanagreen/chrysaora/pkg/board"
	"github.com/dylanagreen/chrysaora/pkg/eval"
)

// ErrNoMove is returned when Search is asked to search a position with no
// legal moves (checkmate or stalemate); callers should consult board.Game's
// own status rather than infer it from this error.
var ErrNoMove = errors.New("no legal move in position")

// MoveChooser is implemented by evaluators that select a move directly
// rather than scoring positions for alpha-beta to compare, e.g.
// eval.Greedy. These are single-ply heuristics, not evaluators that
// deepen correctly over multiple plies, so Search defers to ChooseMove
// entirely and never recurses into alpha-beta when ev implements it.
type MoveChooser interface {
	ChooseMove(ctx context.Context, pos *board.Position, color board.Color, moves []board.Move) (board.Move, error)
}

// DefaultBatchSize is the number of frontier leaf positions scored per
// Evaluator batch call, absent an explicit override.
const DefaultBatchSize = 5

// Result is the outcome of a search: the best move found, its score from
// the side-to-move's point of view, and the node count explored.
type Result struct {
	Move  board.Move
	Score eval.Score
	Nodes uint64
}

func (r Result) String() string {
	return fmt.Sprintf("move=%v score=%v nodes=%v", r.Move.Long, r.Score, r.Nodes)
}

// Options configures a single search call.
type Options struct {
	Depth     int // plies searched; values below 1 are treated as 1
	BatchSize int // 0 uses DefaultBatchSize
}
