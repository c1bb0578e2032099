package board

// Color is the playing side. It doubles as the sign multiplier used by the
// move generator (piece sign, pawn direction), so the same generation logic
// produces correct moves for both sides (spec's sign-symmetry requirement):
// White = 1, Black = -1.
type Color int8

const (
	White Color = 1
	Black Color = -1
)

func (c Color) Opponent() Color {
	return -c
}

func (c Color) IsValid() bool {
	return c == White || c == Black
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Kind is a piece type without color, numbered the way
// original_source/board.py numbers pieces (1=Pawn .. 6=King).
type Kind int8

const (
	NoKind Kind = 0
	Pawn   Kind = 1
	Rook   Kind = 2
	Knight Kind = 3
	Bishop Kind = 4
	Queen  Kind = 5
	King   Kind = 6
)

func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'r', 'R':
		return Rook, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoKind, false
	}
}

func (k Kind) IsValid() bool {
	return Pawn <= k && k <= King
}

// Letter returns the upper-case SAN piece letter, empty for Pawn.
func (k Kind) Letter() string {
	switch k {
	case Rook:
		return "R"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "P"
	case Rook:
		return "R"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "-"
	}
}

// Piece is a signed piece value: magnitude is the Kind, sign is the Color.
// Zero means the square is empty. Move generation is written once and
// parametrized by Color: NewPiece(k, c) gives each side's signed pieces, so
// the board itself is never negated.
type Piece int8

const Empty Piece = 0

func NewPiece(k Kind, c Color) Piece {
	if k == NoKind {
		return Empty
	}
	return Piece(int8(k) * int8(c))
}

func (p Piece) IsEmpty() bool {
	return p == Empty
}

func (p Piece) Kind() Kind {
	if p < 0 {
		return Kind(-p)
	}
	return Kind(p)
}

func (p Piece) Color() Color {
	if p < 0 {
		return Black
	}
	return White
}

// String prints the SAN piece letter, lower-case for Black, matching
// original_source/board.py's __str__.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	if p.Color() == Black {
		return toLower(p.Kind().String())
	}
	return p.Kind().String()
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}
