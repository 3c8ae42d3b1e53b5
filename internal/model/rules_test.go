package model

import (
	"errors"
	"testing"
)

func TestEnPassantCapture(t *testing.T) {
	b := NewBoard()
	mustMove(t, b, 0, 6, 0, 5) // a3
	mustMove(t, b, 3, 1, 3, 3) // d5
	mustMove(t, b, 0, 5, 0, 4) // a4
	mustMove(t, b, 3, 3, 3, 4) // d4
	mustMove(t, b, 4, 6, 4, 4) // e4, passing the black d-pawn

	ep := b.EnPassantTarget()
	if ep == nil || *ep != (Square{4, 5}) {
		t.Fatalf("en passant target = %v, want e3", ep)
	}

	moves := b.LegalMovesFrom(Square{3, 4})
	if !containsSquare(moves, Square{4, 5}) {
		t.Fatalf("black d4 pawn moves = %v, missing en passant capture", moves)
	}

	mustMove(t, b, 3, 4, 4, 5)
	if b.PieceAt(4, 4) != nil {
		t.Errorf("white pawn should have been captured in passing")
	}
	p := b.PieceAt(4, 5)
	if p == nil || p.Kind != Pawn || p.Color != Black {
		t.Errorf("capturing pawn not on e3: %+v", p)
	}
}

func TestEnPassantExpiresAfterOneMove(t *testing.T) {
	b := NewBoard()
	mustMove(t, b, 0, 6, 0, 5)
	mustMove(t, b, 3, 1, 3, 3)
	mustMove(t, b, 0, 5, 0, 4)
	mustMove(t, b, 3, 3, 3, 4)
	mustMove(t, b, 4, 6, 4, 4)

	// Black declines the capture; the window closes.
	mustMove(t, b, 7, 1, 7, 2)
	mustMove(t, b, 7, 6, 7, 5)

	if b.EnPassantTarget() != nil {
		t.Fatalf("en passant target should be cleared after an unrelated move")
	}
	if containsSquare(b.LegalMovesFrom(Square{3, 4}), Square{4, 5}) {
		t.Fatalf("stale en passant capture still offered")
	}
}

func TestCastling(t *testing.T) {
	setup := func() *Board {
		b := emptyBoard(White)
		place(b, King, White, 4, 7)
		place(b, Rook, White, 7, 7)
		place(b, Rook, White, 0, 7)
		place(b, King, Black, 4, 0)
		return b
	}

	t.Run("both sides available on a clear back rank", func(t *testing.T) {
		b := setup()
		moves := b.LegalMovesFrom(Square{4, 7})
		if !containsSquare(moves, Square{6, 7}) {
			t.Errorf("kingside castle missing from %v", moves)
		}
		if !containsSquare(moves, Square{2, 7}) {
			t.Errorf("queenside castle missing from %v", moves)
		}
	})

	t.Run("kingside execution moves the rook", func(t *testing.T) {
		b := setup()
		mustMove(t, b, 4, 7, 6, 7)
		king := b.PieceAt(6, 7)
		rook := b.PieceAt(5, 7)
		if king == nil || king.Kind != King {
			t.Fatalf("king not on g1: %+v", king)
		}
		if rook == nil || rook.Kind != Rook || !rook.HasMoved {
			t.Fatalf("rook not relocated to f1: %+v", rook)
		}
		if b.PieceAt(7, 7) != nil {
			t.Errorf("h1 should be empty after castling")
		}
	})

	t.Run("blocked while the transit square is attacked", func(t *testing.T) {
		b := setup()
		place(b, Rook, Black, 5, 2) // covers f1
		moves := b.LegalMovesFrom(Square{4, 7})
		if containsSquare(moves, Square{6, 7}) {
			t.Errorf("kingside castle allowed across an attacked square")
		}
		if !containsSquare(moves, Square{2, 7}) {
			t.Errorf("queenside castle should be unaffected: %v", moves)
		}
	})

	t.Run("blocked while in check", func(t *testing.T) {
		b := setup()
		place(b, Rook, Black, 4, 2)
		moves := b.LegalMovesFrom(Square{4, 7})
		if containsSquare(moves, Square{6, 7}) || containsSquare(moves, Square{2, 7}) {
			t.Errorf("castling allowed out of check: %v", moves)
		}
	})

	t.Run("blocked by an occupied path", func(t *testing.T) {
		b := setup()
		place(b, Knight, White, 1, 7)
		moves := b.LegalMovesFrom(Square{4, 7})
		if containsSquare(moves, Square{2, 7}) {
			t.Errorf("queenside castle allowed through the b1 knight")
		}
		if !containsSquare(moves, Square{6, 7}) {
			t.Errorf("kingside castle should be unaffected: %v", moves)
		}
	})

	t.Run("rights lost after the king shuffles", func(t *testing.T) {
		b := setup()
		mustMove(t, b, 4, 7, 5, 7) // Kf1
		mustMove(t, b, 4, 0, 3, 0)
		mustMove(t, b, 5, 7, 4, 7) // back to e1
		mustMove(t, b, 3, 0, 4, 0)

		moves := b.LegalMovesFrom(Square{4, 7})
		if containsSquare(moves, Square{6, 7}) || containsSquare(moves, Square{2, 7}) {
			t.Errorf("castling offered after the king moved: %v", moves)
		}
	})

	t.Run("only the shuffled rook loses rights", func(t *testing.T) {
		b := setup()
		mustMove(t, b, 7, 7, 6, 7) // Rg1
		mustMove(t, b, 4, 0, 3, 0)
		mustMove(t, b, 6, 7, 7, 7) // back to h1
		mustMove(t, b, 3, 0, 4, 0)

		moves := b.LegalMovesFrom(Square{4, 7})
		if containsSquare(moves, Square{6, 7}) {
			t.Errorf("kingside castle offered after the rook moved")
		}
		if !containsSquare(moves, Square{2, 7}) {
			t.Errorf("queenside rights should survive: %v", moves)
		}
	})
}

func TestSelfCheckMovesFiltered(t *testing.T) {
	b := emptyBoard(White)
	place(b, King, White, 4, 7)
	place(b, Rook, White, 4, 5) // pinned against the king
	place(b, Rook, Black, 4, 0)
	place(b, King, Black, 0, 0)

	moves := b.LegalMovesFrom(Square{4, 5})
	for _, sq := range moves {
		if sq.X != 4 {
			t.Errorf("pinned rook may only move on the file, got %v", sq)
		}
	}
	if len(moves) == 0 {
		t.Fatalf("pinned rook should still slide along the pin")
	}
}

func TestAttemptMoveRejections(t *testing.T) {
	b := NewBoard()

	if err := b.AttemptMove(Move{From: Square{4, 4}, To: Square{4, 3}}); !errors.Is(err, ErrNoPiece) {
		t.Errorf("empty square: err = %v, want ErrNoPiece", err)
	}
	if err := b.AttemptMove(Move{From: Square{4, 1}, To: Square{4, 2}}); !errors.Is(err, ErrWrongTurn) {
		t.Errorf("black piece on white's turn: err = %v, want ErrWrongTurn", err)
	}
	if err := b.AttemptMove(Move{From: Square{0, 7}, To: Square{0, 5}}); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("rook through own pawn: err = %v, want ErrIllegalMove", err)
	}
	if err := b.AttemptMove(Move{From: Square{4, 6}, To: Square{4, 4}}); err != nil {
		t.Fatalf("legal opening move rejected: %v", err)
	}
}
