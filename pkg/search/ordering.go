package search

import (
	"github.com/prodk123/Dolphin-Bot/pkg/board"
)

const (
	captureFactor  = 10
	underdogBonus  = 30
	centerBonus    = 10
	promotionBonus = 800

	repetitionPenalty = 50
	repetitionWindow  = 4

	kingMovePenalty = 100
	earlyMoveLimit  = 15
	castleBonus     = 40
)

// OrderPriority returns the cheap ordering heuristic for candidates in the
// position: capture value with a bonus for cheap attackers, center and
// promotion bonuses, a penalty for bouncing back to recent destinations,
// and king-move discouragement outside castling. The priority is used only
// for ordering and width truncation, never as a position score.
func OrderPriority(b *board.Board) board.MovePriorityFn {
	history := b.History()

	return func(c board.Candidate) board.MovePriority {
		score := 0

		if target := b.At(c.Move.To); target != nil && target.Color != c.Piece.Color {
			score += target.Kind.Value() * captureFactor
			if c.Piece.Kind.Value() < target.Kind.Value() {
				score += underdogBonus
			}
		}

		if inCenter(c.Move.To) {
			score += centerBonus
		}

		if c.Piece.Kind == board.Pawn && (c.Move.To.Row == 0 || c.Move.To.Row == board.NumRows-1) {
			score += promotionBonus
		}

		for i := len(history) - 1; i >= 0 && i >= len(history)-repetitionWindow; i-- {
			if history[i].To == c.Move.To {
				score -= repetitionPenalty
				break
			}
		}

		if c.Piece.Kind == board.King {
			if len(history) < earlyMoveLimit {
				score -= kingMovePenalty
			}
			if c.Move.IsCastle() {
				score += castleBonus
			}
		}
		return board.MovePriority(score)
	}
}

// inCenter reports whether the square is in the extended center [2,5]x[2,5].
func inCenter(sq board.Sq) bool {
	return 2 <= sq.Row && sq.Row <= 5 && 2 <= sq.Col && sq.Col <= 5
}
