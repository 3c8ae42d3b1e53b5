package model

var (
	knightOffsets = [8]Square{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
	kingOffsets   = [8]Square{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs      = [4]Square{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs    = [4]Square{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// pseudoMoves enumerates destinations that are legal by movement
// pattern and occupancy only. It does not test whether the mover's
// own king is left in check; that is the legality filter's job.
func (b *Board) pseudoMoves(from Square) []Square {
	piece := b.PieceAt(from.X, from.Y)
	if piece == nil {
		return nil
	}
	switch piece.Kind {
	case Pawn:
		return b.pawnMoves(from, piece)
	case Knight:
		return b.offsetMoves(from, piece, knightOffsets[:])
	case Bishop:
		return b.slidingMoves(from, piece, bishopDirs[:])
	case Rook:
		return b.slidingMoves(from, piece, rookDirs[:])
	case Queen:
		// A queen is exactly a rook and a bishop on the same square.
		return append(b.slidingMoves(from, piece, rookDirs[:]), b.slidingMoves(from, piece, bishopDirs[:])...)
	case King:
		return b.kingMoves(from, piece)
	}
	return nil
}

func (b *Board) pawnMoves(from Square, piece *Piece) []Square {
	dir, startRank := -1, 6
	if piece.Color == Black {
		dir, startRank = 1, 1
	}
	var moves []Square
	one := Square{from.X, from.Y + dir}
	if one.onBoard() && b.grid[one.Y][one.X] == nil {
		moves = append(moves, one)
		if two := (Square{from.X, from.Y + 2*dir}); from.Y == startRank && b.grid[two.Y][two.X] == nil {
			moves = append(moves, two)
		}
	}
	for _, dx := range [2]int{-1, 1} {
		to := Square{from.X + dx, from.Y + dir}
		if !to.onBoard() {
			continue
		}
		if target := b.grid[to.Y][to.X]; target != nil && target.Color != piece.Color {
			moves = append(moves, to)
		}
		if b.enPassant != nil && *b.enPassant == to {
			moves = append(moves, to)
		}
	}
	return moves
}

func (b *Board) offsetMoves(from Square, piece *Piece, offsets []Square) []Square {
	var moves []Square
	for _, off := range offsets {
		to := Square{from.X + off.X, from.Y + off.Y}
		if !to.onBoard() {
			continue
		}
		if target := b.grid[to.Y][to.X]; target == nil || target.Color != piece.Color {
			moves = append(moves, to)
		}
	}
	return moves
}

func (b *Board) slidingMoves(from Square, piece *Piece, dirs []Square) []Square {
	var moves []Square
	for _, d := range dirs {
		to := Square{from.X + d.X, from.Y + d.Y}
		for to.onBoard() {
			target := b.grid[to.Y][to.X]
			if target == nil {
				moves = append(moves, to)
			} else {
				if target.Color != piece.Color {
					moves = append(moves, to)
				}
				break
			}
			to = Square{to.X + d.X, to.Y + d.Y}
		}
	}
	return moves
}

// kingMoves adds the two castling destinations to the ordinary one-
// step moves when the strict conditions hold: king and rook unmoved,
// the squares between them empty, and neither the king's square nor
// the two squares it crosses attacked. The rook relocation itself is
// performed by Apply, not enumerated here.
func (b *Board) kingMoves(from Square, piece *Piece) []Square {
	moves := b.offsetMoves(from, piece, kingOffsets[:])
	if piece.HasMoved || b.isAttacked(from, piece.Color.Opponent()) {
		return moves
	}
	opp := piece.Color.Opponent()
	if rook := b.grid[from.Y][7]; rook != nil && rook.Kind == Rook && rook.Color == piece.Color && !rook.HasMoved {
		if b.grid[from.Y][5] == nil && b.grid[from.Y][6] == nil &&
			!b.isAttacked(Square{5, from.Y}, opp) && !b.isAttacked(Square{6, from.Y}, opp) {
			moves = append(moves, Square{6, from.Y})
		}
	}
	if rook := b.grid[from.Y][0]; rook != nil && rook.Kind == Rook && rook.Color == piece.Color && !rook.HasMoved {
		if b.grid[from.Y][1] == nil && b.grid[from.Y][2] == nil && b.grid[from.Y][3] == nil &&
			!b.isAttacked(Square{2, from.Y}, opp) && !b.isAttacked(Square{3, from.Y}, opp) {
			moves = append(moves, Square{2, from.Y})
		}
	}
	return moves
}
