// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dylanagreen/chrysaora/pkg/board"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a position, active color, half-move clock
// and full-move number.
//
// Example:
//   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string) (*board.Position, board.Color, int, int, error) {
	// A FEN record contains six space-separated fields.

	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return nil, 0, 0, 0, fmt.Errorf("invalid number of sections in FEN: %q", fen)
	}

	// (1) Piece placement, from rank 8 down to rank 1, file a through h
	// within each rank.

	var placements []board.Placement

	r, f := board.Rank0, board.FileA
	for _, ch := range parts[0] {
		switch {
		case ch == '/':
			r++
			f = board.FileA

		case unicode.IsDigit(ch):
			f += board.File(ch - '0')

		case unicode.IsLetter(ch):
			k, ok := board.ParseKind(ch)
			if !ok {
				return nil, 0, 0, 0, fmt.Errorf("invalid piece %q in FEN: %q", ch, fen)
			}
			color := board.White
			if unicode.IsLower(ch) {
				color = board.Black
			}
			if !f.IsValid() || !r.IsValid() {
				return nil, 0, 0, 0, fmt.Errorf("invalid number of squares in FEN: %q", fen)
			}
			placements = append(placements, board.Placement{
				Square: board.NewSquare(f, r),
				Piece:  board.NewPiece(k, color),
			})
			f++

		default:
			return nil, 0, 0, 0, fmt.Errorf("invalid character in FEN: %q", fen)
		}
	}
	if r != board.Rank7 || f != board.NumFiles {
		return nil, 0, 0, 0, fmt.Errorf("invalid number of squares in FEN: %q", fen)
	}

	// (2) Active color: "w" or "b".

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("invalid active color in FEN: %q", fen)
	}

	// (3) Castling availability: "-", or one or more of "KQkq".

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("invalid castling in FEN: %q", fen)
	}
	if !castlingMatchesPlacement(placements, castling) {
		return nil, 0, 0, 0, fmt.Errorf("castling rights inconsistent with king/rook placement in FEN: %q", fen)
	}

	// (4) En passant target square, or "-".

	ep := board.InvalidSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, 0, 0, 0, fmt.Errorf("invalid en passant square in FEN: %q", fen)
		}
		ep = sq
	}

	// (5) Half-move clock since the last pawn advance or capture.

	half, err := strconv.Atoi(parts[4])
	if err != nil || half < 0 {
		return nil, 0, 0, 0, fmt.Errorf("invalid half-move clock in FEN: %q", fen)
	}

	// (6) Full-move number, starting at 1 and incremented after Black moves.

	full, err := strconv.Atoi(parts[5])
	if err != nil || full < 1 {
		return nil, 0, 0, 0, fmt.Errorf("invalid full-move number in FEN: %q", fen)
	}

	pos, err := board.NewPosition(placements, castling, ep)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("invalid position in FEN: %q: %w", fen, err)
	}
	return pos, active, half, full, nil
}

// Encode renders a position and game counters as a FEN record.
func Encode(pos *board.Position, active board.Color, half, full int) string {
	var sb strings.Builder
	for r := board.Rank0; r < board.NumRanks; r++ {
		blanks := 0
		for f := board.File(0); f < board.NumFiles; f++ {
			pc := pos.PieceAt(board.NewSquare(f, r))
			if pc.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(pc))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r < board.NumRanks-1 {
			sb.WriteString("/")
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), printColor(active), printCastling(pos.Castling()), ep, half, full)
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

// castlingMatchesPlacement reports whether every right set in c has its
// king and rook still on their home squares in placements. FEN lets a
// position assert castling rights independent of piece placement, but the
// core requires the two agree: a right with no rook (or no king) behind it
// can never actually be exercised.
func castlingMatchesPlacement(placements []board.Placement, c board.Castling) bool {
	at := func(sq board.Square) (board.Piece, bool) {
		for _, p := range placements {
			if p.Square == sq {
				return p.Piece, true
			}
		}
		return board.Empty, false
	}
	hasPiece := func(sq board.Square, k board.Kind, color board.Color) bool {
		p, ok := at(sq)
		return ok && p.Kind() == k && p.Color() == color
	}

	type requirement struct {
		right    board.Castling
		color    board.Color
		homeRank board.Rank
		kingFile board.File
		rookFile board.File
	}
	reqs := []requirement{
		{board.WhiteKingSide, board.White, board.Rank7, board.FileE, board.FileH},
		{board.WhiteQueenSide, board.White, board.Rank7, board.FileE, board.FileA},
		{board.BlackKingSide, board.Black, board.Rank0, board.FileE, board.FileH},
		{board.BlackQueenSide, board.Black, board.Rank0, board.FileE, board.FileA},
	}
	for _, r := range reqs {
		if !c.Has(r.right) {
			continue
		}
		king := board.NewSquare(r.kingFile, r.homeRank)
		rook := board.NewSquare(r.rookFile, r.homeRank)
		if !hasPiece(king, board.King, r.color) || !hasPiece(rook, board.Rook, r.color) {
			return false
		}
	}
	return true
}

func parseCastling(str string) (board.Castling, bool) {
	if str == "-" {
		return board.NoCastling, true
	}
	var c board.Castling
	for _, r := range str {
		switch r {
		case 'K':
			c = c.With(board.WhiteKingSide)
		case 'Q':
			c = c.With(board.WhiteQueenSide)
		case 'k':
			c = c.With(board.BlackKingSide)
		case 'q':
			c = c.With(board.BlackQueenSide)
		default:
			return 0, false
		}
	}
	return c, true
}

func printCastling(c board.Castling) string {
	return c.String()
}

func printPiece(p board.Piece) rune {
	letter := p.Kind().String()
	if p.Color() == board.Black {
		letter = strings.ToLower(letter)
	}
	return []rune(letter)[0]
}
