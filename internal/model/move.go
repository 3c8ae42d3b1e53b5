package model

// Move is a source and destination square. Castling is encoded as the
// king moving two files; promotion is implied by a pawn reaching the
// last rank (always to a queen).
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// MoveRecord is the compact reversal record produced by Apply and
// consumed by the matching Undo. It is a plain value on purpose: the
// search applies and undoes thousands of moves per decision and must
// not allocate per simulation. capturedFrom is the cell the captured
// piece actually occupied, which is the destination for an ordinary
// capture and a different cell for en passant.
type MoveRecord struct {
	moved         *Piece
	movedHadMoved bool
	captured      *Piece
	capturedFrom  Square
	prevEnPassant *Square
}

// Apply performs m in place and returns the record needed to reverse
// it exactly. It assumes m is at least pseudo-legal; legality
// filtering happens in the callers. The status field is not touched
// here: committed moves recompute it, simulated ones never read it.
func (b *Board) Apply(m Move) MoveRecord {
	moved := b.grid[m.From.Y][m.From.X]
	rec := MoveRecord{
		moved:         moved,
		movedHadMoved: moved.HasMoved,
		captured:      b.grid[m.To.Y][m.To.X],
		capturedFrom:  m.To,
		prevEnPassant: b.enPassant,
	}
	b.enPassant = nil

	// A pawn moving diagonally onto an empty square is an en passant
	// capture; the victim stands one rank behind the destination.
	if moved.Kind == Pawn && m.To.X != m.From.X && rec.captured == nil {
		behind := m.To.Y + 1
		if moved.Color == Black {
			behind = m.To.Y - 1
		}
		rec.captured = b.grid[behind][m.To.X]
		rec.capturedFrom = Square{m.To.X, behind}
		b.grid[behind][m.To.X] = nil
	}

	b.grid[m.To.Y][m.To.X] = moved
	b.grid[m.From.Y][m.From.X] = nil

	// Castling: the king's two-file move identifies the side, the rook
	// relocates with it.
	if moved.Kind == King && abs(m.To.X-m.From.X) == 2 {
		if m.To.X == 6 {
			rook := b.grid[m.From.Y][7]
			b.grid[m.From.Y][5] = rook
			b.grid[m.From.Y][7] = nil
			rook.HasMoved = true
		} else {
			rook := b.grid[m.From.Y][0]
			b.grid[m.From.Y][3] = rook
			b.grid[m.From.Y][0] = nil
			rook.HasMoved = true
		}
	}

	if moved.Kind == King || moved.Kind == Rook {
		moved.HasMoved = true
	}

	// Promotion, always to a queen.
	if moved.Kind == Pawn && (m.To.Y == 0 || m.To.Y == 7) {
		b.grid[m.To.Y][m.To.X] = &Piece{Kind: Queen, Color: moved.Color, HasMoved: true}
	}

	if moved.Kind == Pawn && abs(m.To.Y-m.From.Y) == 2 {
		b.enPassant = &Square{m.From.X, (m.From.Y + m.To.Y) / 2}
	}

	b.turn = b.turn.Opponent()
	return rec
}

// Undo reverses Apply bit-exactly: grid, HasMoved flags, turn and en
// passant target all return to their prior values.
func (b *Board) Undo(m Move, rec MoveRecord) {
	b.turn = b.turn.Opponent()

	// Restoring the original piece on the source square also reverses
	// a promotion, since rec.moved holds the pawn, not the queen.
	b.grid[m.From.Y][m.From.X] = rec.moved
	rec.moved.HasMoved = rec.movedHadMoved

	// The rook relocation of a castle is deterministic from the king's
	// move, so it is recomputed here instead of stored in the record.
	// The rook cannot have moved before a castle, so its flag resets.
	if rec.moved.Kind == King && abs(m.To.X-m.From.X) == 2 {
		if m.To.X == 6 {
			rook := b.grid[m.From.Y][5]
			b.grid[m.From.Y][7] = rook
			b.grid[m.From.Y][5] = nil
			rook.HasMoved = false
		} else {
			rook := b.grid[m.From.Y][3]
			b.grid[m.From.Y][0] = rook
			b.grid[m.From.Y][3] = nil
			rook.HasMoved = false
		}
	}

	if rec.captured != nil && rec.capturedFrom != m.To {
		// En passant: the landing square was empty, the victim fell
		// on its own square.
		b.grid[m.To.Y][m.To.X] = nil
		b.grid[rec.capturedFrom.Y][rec.capturedFrom.X] = rec.captured
	} else {
		b.grid[m.To.Y][m.To.X] = rec.captured
	}

	b.enPassant = rec.prevEnPassant
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
