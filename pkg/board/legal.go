package board

// LegalMoves filters PseudoLegalMoves down to moves that do not leave the
// mover's own king in check (spec §4.D), and fills in each move's Short and
// Long SAN forms, disambiguating any Short form that is not unique among the
// legal moves by replacing it with Long.
func (p *Position) LegalMoves(c Color) []Move {
	pseudo := p.PseudoLegalMoves(c)
	legal := make([]Move, 0, len(pseudo))

	for _, m := range pseudo {
		next := p.ApplyMove(m)
		if next.IsInCheck(c) {
			continue
		}
		m.Short, m.Long = sanForms(m)
		legal = append(legal, m)
	}

	disambiguate(legal)
	return legal
}

// sanForms builds the short and long SAN strings for m, per spec §4.D:
// short is the piece letter (omitted for pawns) plus destination, with an
// "x" capture marker before the destination and, for pawn captures, the
// source file prepended; long additionally carries the full source square
// between the piece letter and destination, and an "e.p." suffix for en
// passant captures.
func sanForms(m Move) (short, long string) {
	if m.Kind == CastleKingSide {
		return "O-O", "O-O"
	}
	if m.Kind == CastleQueenSide {
		return "O-O-O", "O-O-O"
	}

	letter := m.Piece.Letter()
	capture := m.IsCapture()

	short = letter
	if m.Piece == Pawn && capture {
		short += m.From.File().String()
	}
	if capture {
		short += "x"
	}
	short += m.To.String()

	long = letter + m.From.String()
	if capture {
		long += "x"
	}
	long += m.To.String()

	if m.Promotion != NoKind {
		short += "=" + m.Promotion.Letter()
		long += "=" + m.Promotion.Letter()
	}
	if m.Kind == EnPassant {
		long += "e.p."
	}
	return short, long
}

// disambiguate replaces Short with Long on every move whose Short form is
// not unique among moves, in place.
func disambiguate(moves []Move) {
	counts := make(map[string]int, len(moves))
	for _, m := range moves {
		counts[m.Short]++
	}
	for i := range moves {
		if counts[moves[i].Short] > 1 {
			moves[i].Short = moves[i].Long
		}
	}
}
