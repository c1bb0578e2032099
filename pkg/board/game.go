package board

import "fmt"

// Status is the game's terminal outcome, if any.
type Status uint8

const (
	InProgress Status = iota
	WhiteWon
	BlackWon
	Draw
)

func (s Status) String() string {
	switch s {
	case WhiteWon:
		return "1-0"
	case BlackWon:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Game is component F: a Position plus history, move list and status. It
// owns make/unmake; Position itself stays a pure value type with no notion
// of move order.
//
// History is kept as a stack of whole positions rather than minimal diff
// records: Position is small and copying it is cheap, so there is no need
// for a separate undo-record type distinct from the position it restores.
type Game struct {
	history     []*Position
	halfMove    []int // half-move clock after the position at the same index
	moves       []Move
	status      Status
	startColor  Color // side to move in history[0]
	fromInitial bool  // true only when history[0] is the standard starting position
}

// NewGame starts a game from the standard initial position.
func NewGame() *Game {
	g := NewGameFromPosition(NewInitialPosition(), White, 0)
	g.fromInitial = true
	return g
}

// NewGameFromPosition starts a game from an arbitrary position, e.g. loaded
// from FEN, with active to move and halfMove as the starting half-move
// clock.
func NewGameFromPosition(pos *Position, active Color, halfMove int) *Game {
	g := &Game{
		history:    []*Position{pos},
		halfMove:   []int{halfMove},
		startColor: active,
	}
	g.status = terminalStatus(pos, active)
	return g
}

func (g *Game) Current() *Position {
	return g.history[len(g.history)-1]
}

// SideToMove alternates starting from the color the game was created with.
func (g *Game) SideToMove() Color {
	if len(g.moves)%2 == 0 {
		return g.startColor
	}
	return g.startColor.Opponent()
}

func (g *Game) Status() Status {
	return g.status
}

// MoveList returns the moves played so far, in order. Each Move carries its
// Long SAN form, which is what callers typically render as the game's
// move list.
func (g *Game) MoveList() []Move {
	return g.moves
}

func (g *Game) HalfMoveClock() int {
	return g.halfMove[len(g.halfMove)-1]
}

// FullMoveNumber is the standard FEN/PGN full move counter: it increments
// after Black moves.
func (g *Game) FullMoveNumber() int {
	plies := len(g.moves)
	if g.startColor == Black {
		plies++
	}
	return 1 + plies/2
}

// LegalMoves returns the legal moves for the side to move in the current
// position.
func (g *Game) LegalMoves() []Move {
	return g.Current().LegalMoves(g.SideToMove())
}

// Push plays m, which must match a move in LegalMoves (From/To/Promotion/Kind).
// The matched legal move is applied, not the caller's copy, so its Short/
// Long/Capture fields are always filled in correctly.
func (g *Game) Push(m Move) (Move, error) {
	if g.status != InProgress {
		return Move{}, fmt.Errorf("game is over (%v)", g.status)
	}

	color := g.SideToMove()
	legal := g.Current().LegalMoves(color)

	var full Move
	found := false
	for _, lm := range legal {
		if lm.Equals(m) {
			full = lm
			found = true
			break
		}
	}
	if !found {
		return Move{}, fmt.Errorf("%w: %v%v", ErrIllegalMove, m.From, m.To)
	}

	next := g.Current().ApplyMove(full)

	clock := g.HalfMoveClock() + 1
	if full.Piece == Pawn || full.IsCapture() {
		clock = 0
	}

	g.history = append(g.history, next)
	g.halfMove = append(g.halfMove, clock)
	g.moves = append(g.moves, full)

	g.updateStatus()
	return full, nil
}

// Pop unmakes the last move, restoring the previous position and status.
func (g *Game) Pop() (Move, error) {
	if len(g.moves) == 0 {
		return Move{}, fmt.Errorf("no move to undo")
	}
	m := g.moves[len(g.moves)-1]
	g.moves = g.moves[:len(g.moves)-1]
	g.history = g.history[:len(g.history)-1]
	g.halfMove = g.halfMove[:len(g.halfMove)-1]
	g.updateStatus()
	return m, nil
}

// updateStatus checks the side now to move for checkmate/stalemate after a
// Push or Pop. The fastest possible checkmate from the standard starting
// position is two moves per side (four plies), so a Game that began there
// can skip the legal-move scan for its first four plies. That bound says
// nothing about a Game loaded from an arbitrary FEN: an already-tense
// mid-game position can be mated in one, so fromInitial gates the shortcut
// to the one case it actually holds for. The position a Game is constructed
// from is always checked in full by terminalStatus regardless, since it may
// already be a finished game loaded from FEN.
func (g *Game) updateStatus() {
	if g.fromInitial && len(g.moves) < 4 {
		g.status = InProgress
		return
	}
	g.status = terminalStatus(g.Current(), g.SideToMove())
}

// terminalStatus reports whether toMove has no legal moves in pos, and if
// so whether that is checkmate (toMove's opponent wins) or stalemate.
func terminalStatus(pos *Position, toMove Color) Status {
	if len(pos.LegalMoves(toMove)) > 0 {
		return InProgress
	}
	if pos.IsInCheck(toMove) {
		if toMove == White {
			return BlackWon
		}
		return WhiteWon
	}
	return Draw
}
