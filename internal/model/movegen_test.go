package model

import "testing"

func TestInitialPositionTwentyLegalMoves(t *testing.T) {
	b := NewBoard()
	if got := len(b.LegalMoves(White)); got != 20 {
		t.Fatalf("white legal moves at start = %d, want 20", got)
	}
	if got := len(b.LegalMoves(Black)); got != 20 {
		t.Fatalf("black legal moves at start = %d, want 20", got)
	}
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Board)
		from  Square
		want  []Square
	}{
		{
			name: "double step from start rank",
			setup: func(b *Board) {
				place(b, Pawn, White, 4, 6)
			},
			from: Square{4, 6},
			want: []Square{{4, 5}, {4, 4}},
		},
		{
			name: "single step after leaving start rank",
			setup: func(b *Board) {
				place(b, Pawn, White, 4, 5)
			},
			from: Square{4, 5},
			want: []Square{{4, 4}},
		},
		{
			name: "double step blocked two ahead",
			setup: func(b *Board) {
				place(b, Pawn, White, 4, 6)
				place(b, Knight, Black, 4, 4)
			},
			from: Square{4, 6},
			want: []Square{{4, 5}},
		},
		{
			name: "fully blocked pawn has no forward moves",
			setup: func(b *Board) {
				place(b, Pawn, White, 4, 6)
				place(b, Knight, Black, 4, 5)
			},
			from: Square{4, 6},
			want: nil,
		},
		{
			name: "diagonal captures only onto enemies",
			setup: func(b *Board) {
				place(b, Pawn, White, 4, 4)
				place(b, Pawn, Black, 3, 3)
				place(b, Pawn, White, 5, 3)
			},
			from: Square{4, 4},
			want: []Square{{4, 3}, {3, 3}},
		},
		{
			name: "black pawn moves down the board",
			setup: func(b *Board) {
				place(b, Pawn, Black, 2, 1)
			},
			from: Square{2, 1},
			want: []Square{{2, 2}, {2, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := emptyBoard(White)
			tt.setup(b)
			got := b.pseudoMoves(tt.from)
			if len(got) != len(tt.want) {
				t.Fatalf("pseudoMoves(%v) = %v, want %v", tt.from, got, tt.want)
			}
			for _, sq := range tt.want {
				if !containsSquare(got, sq) {
					t.Errorf("pseudoMoves(%v) = %v, missing %v", tt.from, got, sq)
				}
			}
		})
	}
}

func TestKnightMoveCounts(t *testing.T) {
	b := emptyBoard(White)
	place(b, Knight, White, 3, 4)
	if got := len(b.pseudoMoves(Square{3, 4})); got != 8 {
		t.Fatalf("knight in the open = %d moves, want 8", got)
	}

	b = emptyBoard(White)
	place(b, Knight, White, 0, 7)
	if got := len(b.pseudoMoves(Square{0, 7})); got != 2 {
		t.Fatalf("cornered knight = %d moves, want 2", got)
	}
}

func TestQueenIsRookPlusBishop(t *testing.T) {
	b := emptyBoard(White)
	place(b, Queen, White, 3, 4)
	queen := b.pseudoMoves(Square{3, 4})

	b = emptyBoard(White)
	place(b, Rook, White, 3, 4)
	rook := b.pseudoMoves(Square{3, 4})

	b = emptyBoard(White)
	place(b, Bishop, White, 3, 4)
	bishop := b.pseudoMoves(Square{3, 4})

	if len(queen) != len(rook)+len(bishop) {
		t.Fatalf("queen moves = %d, want rook %d + bishop %d", len(queen), len(rook), len(bishop))
	}
	for _, sq := range append(rook, bishop...) {
		if !containsSquare(queen, sq) {
			t.Errorf("queen moves missing %v", sq)
		}
	}
}

func TestSlidersStopAtPieces(t *testing.T) {
	b := emptyBoard(White)
	place(b, Rook, White, 0, 7)
	place(b, Pawn, White, 0, 4) // friend up the file
	place(b, Pawn, Black, 3, 7) // enemy along the rank

	moves := b.pseudoMoves(Square{0, 7})
	for _, want := range []Square{{0, 6}, {0, 5}, {1, 7}, {2, 7}, {3, 7}} {
		if !containsSquare(moves, want) {
			t.Errorf("rook moves missing %v", want)
		}
	}
	for _, banned := range []Square{{0, 4}, {0, 3}, {4, 7}} {
		if containsSquare(moves, banned) {
			t.Errorf("rook moves must not contain %v", banned)
		}
	}
}

func TestPieceAtBoundsChecked(t *testing.T) {
	b := NewBoard()
	for _, sq := range []Square{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-3, 11}} {
		if p := b.PieceAt(sq.X, sq.Y); p != nil {
			t.Errorf("PieceAt(%d, %d) = %+v, want nil", sq.X, sq.Y, p)
		}
	}
	if b.PieceAt(4, 7) == nil {
		t.Fatalf("expected white king on its home square")
	}
}
