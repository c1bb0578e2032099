package fen_test

import (
	"testing"

	"github.com/dylanagreen/chrysaora/pkg/board"
	"github.com/dylanagreen/chrysaora/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/1PB1P1b1/P1NP1N2/2P1QPPP/R4RK1 b - b3 0 10",
		"rnb1kbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
	}

	for _, tt := range tests {
		p, c, half, full, err := fen.Decode(tt)
		require.NoError(t, err)
		assert.Equal(t, tt, fen.Encode(p, c, half, full))
	}
}

func TestDecodeSideToMove(t *testing.T) {
	_, c, _, _, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 b - - 3 7")
	require.NoError(t, err)
	assert.Equal(t, board.Black, c)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",             // missing fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1", // wrong square count
		"4k3/8/8/8/8/8/8/4K3 x - - 0 1",                           // bad active color
		"4k3/8/8/8/8/8/8/4K3 w XQkq - 0 1",                        // bad castling
		"4k3/8/8/8/8/8/8/4K3 w - z9 0 1",                          // bad en passant
		"4k3/8/8/8/8/8/8/4K3 w KQkq - 0 1",                        // castling with no rooks at all
	}
	for _, tt := range tests {
		_, _, _, _, err := fen.Decode(tt)
		assert.Error(t, err, tt)
	}
}

func TestDecodeRejectsCastlingWithoutRookOnHomeSquare(t *testing.T) {
	// King and king-side rook both still on their home squares: valid.
	_, _, _, _, err := fen.Decode("4k2r/8/8/8/8/8/8/R3K2R b Kk - 0 1")
	assert.NoError(t, err)

	// Black's king-side rook has moved off h8, but the right is still
	// claimed: must be rejected even though the king itself hasn't moved.
	_, _, _, _, err = fen.Decode("4k3/7r/8/8/8/8/8/R3K2R b Kk - 0 1")
	assert.Error(t, err)
}
