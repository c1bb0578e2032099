package board_test

import (
	"testing"

	"github.com/dylanagreen/chrysaora/pkg/board"
	"github.com/dylanagreen/chrysaora/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameInitialState(t *testing.T) {
	g := board.NewGame()
	assert.Equal(t, board.White, g.SideToMove())
	assert.Equal(t, board.InProgress, g.Status())
	assert.Equal(t, 1, g.FullMoveNumber())
	assert.Equal(t, 20, len(g.LegalMoves()))
}

func TestGamePushPopRoundTrips(t *testing.T) {
	g := board.NewGame()
	moves := g.LegalMoves()
	require.NotEmpty(t, moves)

	before := g.Current()
	played, err := g.Push(moves[0])
	require.NoError(t, err)
	assert.Equal(t, board.Black, g.SideToMove())

	undone, err := g.Pop()
	require.NoError(t, err)
	assert.True(t, played.Equals(undone))
	assert.Equal(t, board.White, g.SideToMove())
	assert.Same(t, before, g.Current())
}

func TestGamePushRejectsIllegalMove(t *testing.T) {
	g := board.NewGame()
	illegal := board.Move{
		From:  board.NewSquare(board.FileE, board.Rank6),
		To:    board.NewSquare(board.FileE, board.Rank3),
		Piece: board.Pawn,
	}
	_, err := g.Push(illegal)
	assert.ErrorIs(t, err, board.ErrIllegalMove)
}

func TestGameHalfMoveClockResetsOnPawnMoveAndCapture(t *testing.T) {
	g := board.NewGame()

	_, err := g.Push(board.Move{From: board.NewSquare(board.FileE, board.Rank6), To: board.NewSquare(board.FileE, board.Rank4), Piece: board.Pawn, Kind: board.DoublePawnPush})
	require.NoError(t, err)
	assert.Equal(t, 0, g.HalfMoveClock())

	_, err = g.Push(board.Move{From: board.NewSquare(board.FileB, board.Rank0), To: board.NewSquare(board.FileC, board.Rank2), Piece: board.Knight})
	require.NoError(t, err)
	assert.Equal(t, 1, g.HalfMoveClock())
}

func TestGameFromFENDetectsAlreadyFinishedPosition(t *testing.T) {
	// Fool's mate final position: Black just delivered checkmate.
	pos, active, half, _, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	g := board.NewGameFromPosition(pos, active, half)
	assert.Equal(t, board.BlackWon, g.Status())
}

func TestGameFromFENDetectsMateWithinFirstFewPlies(t *testing.T) {
	// Loaded mid-game, not from the initial position: the four-ply
	// "fastest possible mate" shortcut must not suppress a real mate
	// that lands on ply 3.
	pos, active, half, _, err := fen.Decode("5r1k/6pp/p1Q5/2p1B3/5n2/6q1/PPP3P1/5R1K b - - 0 34")
	require.NoError(t, err)

	g := board.NewGameFromPosition(pos, active, half)
	require.Equal(t, board.InProgress, g.Status())

	_, err = g.Push(board.Move{From: board.NewSquare(board.FileG, board.Rank5), To: board.NewSquare(board.FileH, board.Rank4), Piece: board.Queen})
	require.NoError(t, err)
	_, err = g.Push(board.Move{From: board.NewSquare(board.FileH, board.Rank7), To: board.NewSquare(board.FileG, board.Rank7), Piece: board.King})
	require.NoError(t, err)
	_, err = g.Push(board.Move{From: board.NewSquare(board.FileF, board.Rank4), To: board.NewSquare(board.FileE, board.Rank6), Piece: board.Knight})
	require.NoError(t, err)

	assert.Equal(t, board.BlackWon, g.Status())
}

func TestGameSideToMoveRespectsFENStartColor(t *testing.T) {
	pos, active, half, _, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)

	g := board.NewGameFromPosition(pos, active, half)
	assert.Equal(t, board.Black, g.SideToMove())

	moves := g.LegalMoves()
	require.NotEmpty(t, moves)
	_, err = g.Push(moves[0])
	require.NoError(t, err)
	assert.Equal(t, board.White, g.SideToMove())
}
