package model

import "testing"

// emptyBoard returns an active board with no pieces. Tests place
// pieces straight on the grid.
func emptyBoard(turn Color) *Board {
	return &Board{turn: turn, status: StatusActive}
}

func place(b *Board, kind PieceKind, color Color, x, y int) *Piece {
	p := &Piece{Kind: kind, Color: color}
	b.grid[y][x] = p
	return p
}

func mustMove(t *testing.T, b *Board, fromX, fromY, toX, toY int) {
	t.Helper()
	m := Move{From: Square{fromX, fromY}, To: Square{toX, toY}}
	if err := b.AttemptMove(m); err != nil {
		t.Fatalf("move %v rejected: %v", m, err)
	}
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// cellState and boardSnapshot capture everything Undo must restore:
// occupancy, piece identity, HasMoved flags, turn and the en passant
// target. Snapshots are comparable with ==.
type cellState struct {
	occupied bool
	kind     PieceKind
	color    Color
	hasMoved bool
}

type boardSnapshot struct {
	cells [8][8]cellState
	turn  Color
	ep    Square
	epSet bool
}

func snapshot(b *Board) boardSnapshot {
	var snap boardSnapshot
	for y := range b.grid {
		for x, p := range b.grid[y] {
			if p != nil {
				snap.cells[y][x] = cellState{occupied: true, kind: p.Kind, color: p.Color, hasMoved: p.HasMoved}
			}
		}
	}
	snap.turn = b.turn
	if b.enPassant != nil {
		snap.ep = *b.enPassant
		snap.epSet = true
	}
	return snap
}
