package model

import "errors"

// Rejection reasons surfaced by AttemptMove. The board itself never
// reaches a fatal condition; every expected failure is one of these.
var (
	ErrGameOver    = errors.New("game is already over")
	ErrNoPiece     = errors.New("no piece at source square")
	ErrWrongTurn   = errors.New("piece belongs to the other player")
	ErrIllegalMove = errors.New("move is not legal")
)

// Board is the whole mutable game state: the 8x8 grid of optional
// pieces, whose turn it is, the derived status and the transient en
// passant target. The grid is indexed grid[y][x] with y == 0 being
// black's back rank. Nothing in here locks; a caller that shares a
// Board across goroutines owns the synchronization.
type Board struct {
	grid      [8][8]*Piece
	turn      Color
	status    Status
	enPassant *Square
}

// NewBoard returns a board in the standard starting position, white
// to move.
func NewBoard() *Board {
	b := &Board{turn: White, status: StatusActive}
	backRank := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, kind := range backRank {
		b.grid[0][x] = &Piece{Kind: kind, Color: Black}
		b.grid[7][x] = &Piece{Kind: kind, Color: White}
	}
	for x := 0; x < 8; x++ {
		b.grid[1][x] = &Piece{Kind: Pawn, Color: Black}
		b.grid[6][x] = &Piece{Kind: Pawn, Color: White}
	}
	return b
}

// PieceAt returns the piece at (x, y). Empty and out-of-range squares
// both yield nil; coordinates from the outside world are never an
// error here.
func (b *Board) PieceAt(x, y int) *Piece {
	if x < 0 || x >= 8 || y < 0 || y >= 8 {
		return nil
	}
	return b.grid[y][x]
}

// Turn returns the side to move.
func (b *Board) Turn() Color { return b.turn }

// GameStatus returns the status computed after the last committed
// move.
func (b *Board) GameStatus() Status { return b.status }

// EnPassantTarget returns a copy of the square a pawn skipped on the
// immediately preceding two-square advance, or nil.
func (b *Board) EnPassantTarget() *Square {
	if b.enPassant == nil {
		return nil
	}
	sq := *b.enPassant
	return &sq
}

// Grid returns a deep copy of the board contents, safe to marshal or
// inspect after the caller releases whatever lock guards the board.
func (b *Board) Grid() [8][8]*Piece {
	var out [8][8]*Piece
	for y := range b.grid {
		for x, p := range b.grid[y] {
			if p != nil {
				cp := *p
				out[y][x] = &cp
			}
		}
	}
	return out
}

// AttemptMove validates m against the full pipeline (turn, pseudo-
// legality, self-check) and, if legal, commits it and recomputes the
// game status. On rejection the board is left untouched and the
// returned error says why.
func (b *Board) AttemptMove(m Move) error {
	if b.status != StatusActive {
		return ErrGameOver
	}
	piece := b.PieceAt(m.From.X, m.From.Y)
	if piece == nil {
		return ErrNoPiece
	}
	if piece.Color != b.turn {
		return ErrWrongTurn
	}
	legal := false
	for _, to := range b.LegalMovesFrom(m.From) {
		if to == m.To {
			legal = true
			break
		}
	}
	if !legal {
		return ErrIllegalMove
	}
	b.Apply(m)
	b.updateStatus()
	return nil
}

// updateStatus derives the status for the side now to move. Once the
// game leaves StatusActive it stays there; AttemptMove refuses
// further moves.
func (b *Board) updateStatus() {
	if b.hasAnyLegalMove(b.turn) {
		b.status = StatusActive
		return
	}
	if b.InCheck(b.turn) {
		b.status = StatusCheckmate
	} else {
		b.status = StatusStalemate
	}
}
