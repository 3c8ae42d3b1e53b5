package model

// Color identifies one of the two sides.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceKind is the tagged variant a piece dispatches its movement
// pattern on.
type PieceKind string

const (
	Pawn   PieceKind = "pawn"
	Knight PieceKind = "knight"
	Bishop PieceKind = "bishop"
	Rook   PieceKind = "rook"
	Queen  PieceKind = "queen"
	King   PieceKind = "king"
)

// Piece is a game piece. It does not know its own coordinates; the
// board grid is the single source of truth for where a piece stands.
// HasMoved only matters for kings and rooks (castling eligibility)
// and never resets for the lifetime of the piece on a committed line.
type Piece struct {
	Kind     PieceKind `json:"kind"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

// Square is a board coordinate. X is the file (0 = a), Y is the rank
// row of the grid (0 = black's back rank, 7 = white's).
type Square struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s Square) onBoard() bool {
	return s.X >= 0 && s.X < 8 && s.Y >= 0 && s.Y < 8
}

// Status is the derived state of the game.
type Status string

const (
	StatusActive    Status = "active"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
)
