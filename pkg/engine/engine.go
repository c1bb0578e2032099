// Package engine ties together board state, evaluation and search behind a
// single synchronous API, used by both the UCI driver and the spectator
// broadcaster.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/dylanagreen/chrysaora/pkg/board"
	"github.com/dylanagreen/chrysaora/pkg/board/fen"
	"github.com/dylanagreen/chrysaora/pkg/board/notation"
	"github.com/dylanagreen/chrysaora/pkg/eval"
	"github.com/dylanagreen/chrysaora/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

const (
	// DefaultMaxDepth, MinMaxDepth and MaxMaxDepth bound the UCI "max_depth"
	// spin option.
	DefaultMaxDepth = 3
	MinMaxDepth     = 1
	MaxMaxDepth     = 6
)

// Options are runtime-adjustable engine settings.
type Options struct {
	MaxDepth int
}

func (o Options) String() string {
	return fmt.Sprintf("{max_depth=%v}", o.MaxDepth)
}

// Engine encapsulates game state, the pluggable evaluator and search. It is
// safe for concurrent use; every exported method that reads or writes the
// game or options takes the lock.
type Engine struct {
	name, author string

	eval eval.Evaluator
	opts Options

	mu   sync.Mutex
	game *board.Game
}

// Option is an engine construction option.
type Option func(*Engine)

// WithEvaluator overrides the default Material evaluator.
func WithEvaluator(ev eval.Evaluator) Option {
	return func(e *Engine) {
		e.eval = ev
	}
}

// WithOptions sets the initial runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New creates an engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		eval:   eval.Material{},
		opts:   Options{MaxDepth: DefaultMaxDepth},
	}
	for _, fn := range opts {
		fn(e)
	}
	e.game = board.NewGame()

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version, per UCI's "id name".
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

// SetMaxDepth clamps and sets the search depth, per the UCI "max_depth"
// spin option.
func (e *Engine) SetMaxDepth(depth int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case depth < MinMaxDepth:
		depth = MinMaxDepth
	case depth > MaxMaxDepth:
		depth = MaxMaxDepth
	}
	e.opts.MaxDepth = depth
}

// Position returns the current position in FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.positionLocked()
}

func (e *Engine) positionLocked() string {
	return fen.Encode(e.game.Current(), e.game.SideToMove(), e.game.HalfMoveClock(), e.game.FullMoveNumber())
}

// Game returns the engine's game. Callers must not mutate it concurrently
// with other Engine methods.
func (e *Engine) Game() *board.Game {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game
}

// Reset replaces the current game with one starting from position, a FEN
// string.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, active, half, _, err := fen.Decode(position)
	if err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	e.game = board.NewGameFromPosition(pos, active, half)

	logw.Infof(ctx, "Reset to %v", position)
	return nil
}

// Move plays a single move, in UCI coordinate notation.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := notation.Parse(e.game.Current(), e.game.SideToMove(), move)
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", move, err)
	}
	if _, err := e.game.Push(m); err != nil {
		return fmt.Errorf("illegal move %q: %w", move, err)
	}

	logw.Infof(ctx, "Move %v: %v", move, e.positionLocked())
	return nil
}

// TakeBack undoes the latest move.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.game.Pop(); err != nil {
		return err
	}
	return nil
}

// BestMove runs a fixed-depth search from the current position and returns
// the result. It does not play the move; callers decide whether to Push it.
func (e *Engine) BestMove(ctx context.Context) (search.Result, error) {
	e.mu.Lock()
	pos := e.game.Current()
	stm := e.game.SideToMove()
	depth := e.opts.MaxDepth
	ev := e.eval
	e.mu.Unlock()

	logw.Infof(ctx, "Searching %v at depth %v", fen.Encode(pos, stm, 0, 1), depth)
	return search.Search(ctx, pos, stm, ev, search.Options{Depth: depth})
}
