// Package notation converts between algebraic chess notation (SAN, long
// algebraic, UCI coordinate) and board.Move, resolving ambiguous input
// against a position's legal move list.
package notation

import (
	"fmt"
	"strings"

	"github.com/dylanagreen/chrysaora/pkg/board"
)

// Parse resolves str, in SAN, long algebraic or UCI coordinate form, against
// the legal moves available to stm in pos. A trailing "+" or "#" check/mate
// annotation is accepted but ignored, since the core never generates one.
func Parse(pos *board.Position, stm board.Color, str string) (board.Move, error) {
	str = strings.TrimRight(strings.TrimSpace(str), "+#")
	if str == "" {
		return board.Move{}, fmt.Errorf("empty move")
	}

	// "0-0"/"0-0-0" are accepted synonyms for castling on input; the core
	// only ever generates "O-O"/"O-O-O" itself.
	str = strings.ReplaceAll(str, "0-0-0", "O-O-O")
	str = strings.ReplaceAll(str, "0-0", "O-O")

	legal := pos.LegalMoves(stm)

	for _, m := range legal {
		if m.Short == str || m.Long == str {
			return m, nil
		}
	}

	// Fall back to UCI coordinate form, which disambiguation never touches.
	if uci, err := board.ParseUCIMove(str); err == nil {
		for _, m := range legal {
			if m.From == uci.From && m.To == uci.To && m.Promotion == uci.Promotion {
				return m, nil
			}
		}
	}

	return board.Move{}, fmt.Errorf("%q is not a legal move", str)
}

// Long renders the move list of a game in long algebraic notation, the form
// spec uses for the canonical move history.
func Long(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Long
	}
	return out
}

// SAN renders the move list in short algebraic notation.
func SAN(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Short
	}
	return out
}
