package board

// ApplyMove returns the position resulting from playing m, which must be at
// least pseudo-legal. It does not check legality (self-check); that is
// LegalMoves' job. ApplyMove is also the core of Game.Push (component F).
func (p *Position) ApplyMove(m Move) *Position {
	next := p.Clone()
	mover := p.PieceAt(m.From)
	color := mover.Color()

	next.enpassant = InvalidSquare

	switch m.Kind {
	case EnPassant:
		captured := NewSquare(m.To.File(), m.From.Rank())
		next.set(captured, Empty)
		next.set(m.From, Empty)
		next.set(m.To, mover)

	case CastleKingSide, CastleQueenSide:
		rank := m.From.Rank()
		next.set(m.From, Empty)
		next.set(m.To, mover)
		if m.Kind == CastleKingSide {
			next.set(NewSquare(FileH, rank), Empty)
			next.set(NewSquare(FileF, rank), NewPiece(Rook, color))
		} else {
			next.set(NewSquare(FileA, rank), Empty)
			next.set(NewSquare(FileD, rank), NewPiece(Rook, color))
		}

	case DoublePawnPush:
		next.set(m.From, Empty)
		next.set(m.To, mover)
		mid := Rank((int(m.From.Rank()) + int(m.To.Rank())) / 2)
		next.enpassant = NewSquare(m.From.File(), mid)

	default:
		next.set(m.From, Empty)
		if m.Promotion != NoKind {
			next.set(m.To, NewPiece(m.Promotion, color))
		} else {
			next.set(m.To, mover)
		}
	}

	next.castling = updateCastlingRights(p.castling, m, color)
	return next
}

// updateCastlingRights implements spec §4.F step 4: a king move (including
// castling) clears both of the mover's rights; a rook move from, or a
// capture on, a1/h1/a8/h8 clears the matching right.
func updateCastlingRights(old Castling, m Move, color Color) Castling {
	c := old
	if m.Piece == King {
		c = c.Without(KingSideRight(color)).Without(QueenSideRight(color))
	}

	clearIfHomeSquare := func(sq Square) {
		switch sq {
		case NewSquare(FileA, Rank7):
			c = c.Without(WhiteQueenSide)
		case NewSquare(FileH, Rank7):
			c = c.Without(WhiteKingSide)
		case NewSquare(FileA, Rank0):
			c = c.Without(BlackQueenSide)
		case NewSquare(FileH, Rank0):
			c = c.Without(BlackKingSide)
		}
	}
	clearIfHomeSquare(m.From)
	clearIfHomeSquare(m.To)

	return c
}
