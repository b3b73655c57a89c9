package eval

import "github.com/prodk123/Dolphin-Bot/pkg/board"

// endgamePieceLimit is the phase rule: the game is in the endgame once
// fewer than 10 non-king pieces remain across both sides.
const endgamePieceLimit = 10

// IsEndgame reports whether the position is in the endgame phase.
func IsEndgame(b *board.Board) bool {
	n := 0
	for row := 0; row < board.NumRows; row++ {
		for col := 0; col < board.NumCols; col++ {
			p := b.At(board.NewSq(row, col))
			if p != nil && p.Kind != board.King {
				n++
			}
		}
	}
	return n < endgamePieceLimit
}
