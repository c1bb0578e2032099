package board

// knightOffsets and kingOffsets are the fixed-shape jump tables shared by
// attack detection and pseudo-legal generation.
var knightOffsets = [8][2]int{
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var rookDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// IsAttacked returns true iff sq is attacked by a piece of color by. It does
// not allocate and does not consult the move generator: it is the hot path
// called by every candidate-move legality check. Does not account for en
// passant (a square is never "attacked" via en passant).
func (p *Position) IsAttacked(sq Square, by Color) bool {
	r, f := int(sq.Rank()), int(sq.File())

	// Pawns: an enemy pawn attacks diagonally "forward" from its own point
	// of view, i.e. towards decreasing rank for White, increasing for Black.
	// So to find an attacking White pawn we look one rank *below* sq (rank+1),
	// since that pawn would step up onto sq.
	pawnRank := r + int(by)
	if onBoard(pawnRank, f-1) && p.at(Rank(pawnRank), File(f-1)) == NewPiece(Pawn, by) {
		return true
	}
	if onBoard(pawnRank, f+1) && p.at(Rank(pawnRank), File(f+1)) == NewPiece(Pawn, by) {
		return true
	}

	for _, o := range knightOffsets {
		nr, nf := r+o[0], f+o[1]
		if onBoard(nr, nf) && p.at(Rank(nr), File(nf)) == NewPiece(Knight, by) {
			return true
		}
	}

	for _, o := range kingOffsets {
		nr, nf := r+o[0], f+o[1]
		if onBoard(nr, nf) && p.at(Rank(nr), File(nf)) == NewPiece(King, by) {
			return true
		}
	}

	for _, d := range rookDirs {
		nr, nf := r+d[0], f+d[1]
		for onBoard(nr, nf) {
			pc := p.at(Rank(nr), File(nf))
			if !pc.IsEmpty() {
				if pc.Color() == by && (pc.Kind() == Rook || pc.Kind() == Queen) {
					return true
				}
				break
			}
			nr, nf = nr+d[0], nf+d[1]
		}
	}

	for _, d := range bishopDirs {
		nr, nf := r+d[0], f+d[1]
		for onBoard(nr, nf) {
			pc := p.at(Rank(nr), File(nf))
			if !pc.IsEmpty() {
				if pc.Color() == by && (pc.Kind() == Bishop || pc.Kind() == Queen) {
					return true
				}
				break
			}
			nr, nf = nr+d[0], nf+d[1]
		}
	}

	return false
}

// IsInCheck returns true iff color's king is attacked.
func (p *Position) IsInCheck(c Color) bool {
	sq, ok := p.KingSquare(c)
	if !ok {
		return false
	}
	return p.IsAttacked(sq, c.Opponent())
}
