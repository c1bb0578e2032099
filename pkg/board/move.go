package board

import "fmt"

// MoveKind distinguishes the handful of moves that need special handling
// during make/unmake, beyond the orthogonal Capture/Promotion fields.
type MoveKind uint8

const (
	Normal MoveKind = iota
	DoublePawnPush
	EnPassant
	CastleKingSide
	CastleQueenSide
)

// Move is a fully-specified pseudo-legal (not necessarily legal) move.
// Short and Long SAN are filled in by LegalMoves/disambiguation, not by the
// raw per-piece generators.
type Move struct {
	From, To  Square
	Piece     Kind // moving piece kind
	Capture   Kind // captured piece kind, NoKind if none
	Promotion Kind // promotion piece kind, NoKind if none
	Kind      MoveKind

	Short string // SAN, possibly ambiguous until disambiguated
	Long  string // SAN with explicit source square
}

func (m Move) IsCapture() bool {
	return m.Capture != NoKind || m.Kind == EnPassant
}

func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

func (m Move) IsCastle() bool {
	return m.Kind == CastleKingSide || m.Kind == CastleQueenSide
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion && m.Kind == o.Kind
}

func (m Move) String() string {
	return m.UCI()
}

// UCI returns the coordinate form used on the wire: source+destination
// squares plus an optional lower-case promotion letter, e.g. "e7e8q".
func (m Move) UCI() string {
	if m.Promotion != NoKind {
		return fmt.Sprintf("%v%v%v", m.From, m.To, toLower(m.Promotion.String()))
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// ParseUCIMove parses a coordinate move such as "e2e4" or "a7a8q". It does
// not resolve castling or en passant; that is filled in by matching against
// the legal move list for the position.
func ParseUCIMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move %q: wrong length", str)
	}
	from, err := ParseSquare(runes[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", str, err)
	}
	promo := NoKind
	if len(runes) == 5 {
		k, ok := ParseKind(runes[4])
		if !ok || k == Pawn || k == King {
			return Move{}, fmt.Errorf("invalid promotion in move %q", str)
		}
		promo = k
	}
	return Move{From: from, To: to, Promotion: promo}, nil
}
