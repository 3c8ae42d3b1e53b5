package model

// isAttacked reports whether any piece of the given color threatens
// sq. Every threat is tested by direct geometry (rays and fixed
// offsets) rather than through the move generator. The asymmetry is
// deliberate: the king's generator consults this function to validate
// castling, so routing king or pawn threats back through piece move
// generation would recurse without bound.
func (b *Board) isAttacked(sq Square, by Color) bool {
	for _, d := range rookDirs {
		at := Square{sq.X + d.X, sq.Y + d.Y}
		for at.onBoard() {
			if p := b.grid[at.Y][at.X]; p != nil {
				if p.Color == by && (p.Kind == Rook || p.Kind == Queen) {
					return true
				}
				break
			}
			at = Square{at.X + d.X, at.Y + d.Y}
		}
	}
	for _, d := range bishopDirs {
		at := Square{sq.X + d.X, sq.Y + d.Y}
		for at.onBoard() {
			if p := b.grid[at.Y][at.X]; p != nil {
				if p.Color == by && (p.Kind == Bishop || p.Kind == Queen) {
					return true
				}
				break
			}
			at = Square{at.X + d.X, at.Y + d.Y}
		}
	}
	for _, off := range knightOffsets {
		if p := b.PieceAt(sq.X+off.X, sq.Y+off.Y); p != nil && p.Color == by && p.Kind == Knight {
			return true
		}
	}
	for _, off := range kingOffsets {
		if p := b.PieceAt(sq.X+off.X, sq.Y+off.Y); p != nil && p.Color == by && p.Kind == King {
			return true
		}
	}
	// A white pawn attacks toward decreasing y, so it sits one rank
	// below the square it threatens.
	dy := 1
	if by == Black {
		dy = -1
	}
	for _, dx := range [2]int{-1, 1} {
		if p := b.PieceAt(sq.X+dx, sq.Y+dy); p != nil && p.Color == by && p.Kind == Pawn {
			return true
		}
	}
	return false
}

// InCheck reports whether color's king is attacked. A board without
// that king degrades to "not in check" rather than failing; the state
// cannot occur during active play but must not crash the filter.
func (b *Board) InCheck(color Color) bool {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if p := b.grid[y][x]; p != nil && p.Kind == King && p.Color == color {
				return b.isAttacked(Square{x, y}, color.Opponent())
			}
		}
	}
	return false
}
