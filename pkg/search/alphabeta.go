package search

import (
	"context"

	"github.com/dylanagreen/chrysaora/pkg/board"
	"github.com/dylanagreen/chrysaora/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Search performs a fixed-depth alpha-beta negamax search for the side to
// move in pos, using ev to score leaves. It is cooperatively cancellable:
// ctx is polled (non-blocking) at every node expansion, and a cancelled
// search returns ctx.Err() rather than a partial result.
func Search(ctx context.Context, pos *board.Position, color board.Color, ev eval.Evaluator, opt Options) (Result, error) {
	moves := pos.LegalMoves(color)
	if len(moves) == 0 {
		return Result{}, ErrNoMove
	}

	if mc, ok := ev.(MoveChooser); ok {
		m, err := mc.ChooseMove(ctx, pos, color, moves)
		if err != nil {
			return Result{}, err
		}
		return Result{Move: m}, nil
	}

	depth := opt.Depth
	if depth < 1 {
		depth = 1
	}
	batchSize := opt.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	r := &run{ev: ev, batchSize: batchSize}
	move, score := r.root(ctx, pos, color, depth, moves)

	if contextx.IsCancelled(ctx) {
		return Result{}, ctx.Err()
	}
	return Result{Move: move, Score: score, Nodes: r.nodes}, nil
}

type run struct {
	ev        eval.Evaluator
	batchSize int
	nodes     uint64
}

// root mirrors the interior negamax loop but additionally tracks which move
// produced the best score, since negamax alone only needs the score.
func (r *run) root(ctx context.Context, pos *board.Position, color board.Color, depth int, moves []board.Move) (board.Move, eval.Score) {
	if depth == 1 {
		score, idx := r.frontier(ctx, pos, color, moves, eval.NegInf, eval.Inf)
		return moves[idx], score
	}

	opp := color.Opponent()
	alpha, beta := eval.NegInf, eval.Inf
	best := moves[0]
	bestScore := eval.NegInf

	for _, m := range moves {
		if contextx.IsCancelled(ctx) {
			break
		}
		child := pos.ApplyMove(m)
		score := eval.IncrementMateDistance(-r.negamax(ctx, child, opp, depth-1, -beta, -alpha))
		if score > bestScore {
			bestScore = score
			best = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return best, bestScore
}

// negamax returns the score of pos from color's point of view, searching
// depth further plies.
func (r *run) negamax(ctx context.Context, pos *board.Position, color board.Color, depth int, alpha, beta eval.Score) eval.Score {
	if contextx.IsCancelled(ctx) {
		return 0
	}
	r.nodes++

	moves := pos.LegalMoves(color)
	if len(moves) == 0 {
		if pos.IsInCheck(color) {
			return -eval.Mate(0)
		}
		return 0
	}
	if depth == 0 {
		return eval.Clamp(r.ev.Evaluate(ctx, pos) * eval.Unit(color))
	}
	if depth == 1 {
		score, _ := r.frontier(ctx, pos, color, moves, alpha, beta)
		return score
	}

	opp := color.Opponent()
	best := eval.NegInf
	for _, m := range moves {
		if contextx.IsCancelled(ctx) {
			break
		}
		child := pos.ApplyMove(m)
		score := eval.IncrementMateDistance(-r.negamax(ctx, child, opp, depth-1, -beta, -alpha))
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break // beta cutoff
		}
	}
	return best
}

// frontier evaluates every child of a depth-1 node (i.e. every position one
// ply from a leaf) in batches, since that ply holds the overwhelming
// majority of a fixed-depth search's nodes and is where an Evaluator's own
// batching (e.g. eval.Neural) pays off. Children that are themselves
// checkmate or stalemate bypass the evaluator, per the leaf-handling rule;
// only non-terminal children are ever sent to the evaluator. Because every
// child is computed before any pruning decision, frontier does not itself
// prune; alpha/beta are still honored by negamax one ply up.
func (r *run) frontier(ctx context.Context, pos *board.Position, color board.Color, moves []board.Move, alpha, beta eval.Score) (eval.Score, int) {
	opp := color.Opponent()

	children := make([]*board.Position, len(moves))
	scores := make([]eval.Score, len(moves))
	var toScore []int

	for i, m := range moves {
		child := pos.ApplyMove(m)
		children[i] = child
		r.nodes++

		if len(child.LegalMoves(opp)) == 0 {
			if child.IsInCheck(opp) {
				scores[i] = -eval.Mate(0)
			} else {
				scores[i] = 0
			}
			continue
		}
		toScore = append(toScore, i)
	}

	for start := 0; start < len(toScore); start += r.batchSize {
		end := start + r.batchSize
		if end > len(toScore) {
			end = len(toScore)
		}
		group := toScore[start:end]

		positions := make([]*board.Position, len(group))
		for j, idx := range group {
			positions[j] = children[idx]
		}
		batch := evaluateBatch(ctx, r.ev, positions, opp)
		for j, idx := range group {
			scores[idx] = batch[j]
		}
		if contextx.IsCancelled(ctx) {
			break
		}
	}

	best := eval.NegInf
	bestIdx := 0
	for i := range moves {
		s := eval.IncrementMateDistance(-scores[i])
		if s > best {
			best = s
			bestIdx = i
		}
	}
	if best > alpha {
		alpha = best
	}
	_ = beta
	return best, bestIdx
}

// batchEvaluator is implemented by evaluators (e.g. eval.Neural) that can
// score many positions in one call. Detected structurally; a plain
// eval.Evaluator is adapted by evaluating one at a time.
type batchEvaluator interface {
	EvaluateBatch(ctx context.Context, positions []*board.Position) ([]eval.Score, error)
}

// evaluateBatch scores positions, all with color to move, returning scores
// relative to color.
func evaluateBatch(ctx context.Context, ev eval.Evaluator, positions []*board.Position, color board.Color) []eval.Score {
	if be, ok := ev.(batchEvaluator); ok {
		if scores, err := be.EvaluateBatch(ctx, positions); err == nil && len(scores) == len(positions) {
			out := make([]eval.Score, len(scores))
			for i, s := range scores {
				out[i] = eval.Clamp(s * eval.Unit(color))
			}
			return out
		}
	}

	out := make([]eval.Score, len(positions))
	for i, pos := range positions {
		out[i] = eval.Clamp(ev.Evaluate(ctx, pos) * eval.Unit(color))
	}
	return out
}
