package model

// LegalMovesFrom returns the destinations the piece at from may
// actually play: pseudo-legal by pattern, and not leaving its own
// king in check, verified by applying and immediately undoing each
// candidate. Interactive commits and the search both expand moves
// through this one filter, so the two paths can never disagree on
// what is legal.
func (b *Board) LegalMovesFrom(from Square) []Square {
	piece := b.PieceAt(from.X, from.Y)
	if piece == nil {
		return nil
	}
	var legal []Square
	for _, to := range b.pseudoMoves(from) {
		m := Move{From: from, To: to}
		rec := b.Apply(m)
		if !b.InCheck(piece.Color) {
			legal = append(legal, to)
		}
		b.Undo(m, rec)
	}
	return legal
}

// LegalMoves enumerates every legal move for color.
func (b *Board) LegalMoves(color Color) []Move {
	var moves []Move
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := b.grid[y][x]
			if p == nil || p.Color != color {
				continue
			}
			from := Square{x, y}
			for _, to := range b.LegalMovesFrom(from) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// hasAnyLegalMove is the early-exit form: status evaluation only
// needs existence, not the full enumeration.
func (b *Board) hasAnyLegalMove(color Color) bool {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := b.grid[y][x]
			if p == nil || p.Color != color {
				continue
			}
			from := Square{x, y}
			for _, to := range b.pseudoMoves(from) {
				m := Move{From: from, To: to}
				rec := b.Apply(m)
				inCheck := b.InCheck(color)
				b.Undo(m, rec)
				if !inCheck {
					return true
				}
			}
		}
	}
	return false
}
