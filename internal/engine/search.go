// Package engine plays one side of a game with a fixed-depth
// minimax search, alpha-beta pruned, driven by a material-only
// evaluation. It works directly on the board's apply/undo protocol
// and allocates nothing per simulated move beyond the move lists
// themselves.
package engine

import (
	"github.com/willcla/backrank/internal/model"
)

// Material values in centipawns. The king carries no material value;
// losing it is expressed through the mate score instead.
const (
	pawnValue   = 100
	knightValue = 320
	bishopValue = 330
	rookValue   = 500
	queenValue  = 900

	mateScore = 20000
	infinity  = 1 << 30
)

// FindBestMove returns the move for color with the best score at the
// given ply depth, or false when color has no legal move (the caller
// is expected to have consulted the game status already). Ties keep
// the first maximal move in enumeration order. The search runs to
// completion; there is no time budget or cancellation.
func FindBestMove(b *model.Board, color model.Color, depth int) (model.Move, bool) {
	moves := b.LegalMoves(color)
	if len(moves) == 0 {
		return model.Move{}, false
	}
	var best model.Move
	bestScore := -infinity
	for _, m := range moves {
		rec := b.Apply(m)
		score := minimax(b, depth-1, -infinity, infinity, false, color)
		b.Undo(m, rec)
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best, true
}

// minimax evaluates the position from perspective's point of view.
// Pruning stops sibling scans once alpha >= beta; the returned score
// is identical to an unpruned search at the same depth, only the
// node count differs.
func minimax(b *model.Board, depth, alpha, beta int, maximizing bool, perspective model.Color) int {
	if depth == 0 {
		return Evaluate(b, perspective)
	}
	side := b.Turn()
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		if b.InCheck(side) {
			// Mate: bad for the side that cannot move, so the sign
			// follows whose node this is.
			if maximizing {
				return -mateScore
			}
			return mateScore
		}
		return 0 // stalemate is a draw
	}
	if maximizing {
		value := -infinity
		for _, m := range moves {
			rec := b.Apply(m)
			score := minimax(b, depth-1, alpha, beta, false, perspective)
			b.Undo(m, rec)
			if score > value {
				value = score
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
		return value
	}
	value := infinity
	for _, m := range moves {
		rec := b.Apply(m)
		score := minimax(b, depth-1, alpha, beta, true, perspective)
		b.Undo(m, rec)
		if score < value {
			value = score
		}
		if value < beta {
			beta = value
		}
		if alpha >= beta {
			break
		}
	}
	return value
}

// Evaluate is a pure material count: positive when perspective is
// ahead.
func Evaluate(b *model.Board, perspective model.Color) int {
	score := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := b.PieceAt(x, y)
			if p == nil {
				continue
			}
			v := pieceValue(p.Kind)
			if p.Color == perspective {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}

func pieceValue(kind model.PieceKind) int {
	switch kind {
	case model.Pawn:
		return pawnValue
	case model.Knight:
		return knightValue
	case model.Bishop:
		return bishopValue
	case model.Rook:
		return rookValue
	case model.Queen:
		return queenValue
	}
	return 0
}
