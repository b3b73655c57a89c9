// Package search contains adversarial search functionality and utilities.
package search

import (
	"context"

	"github.com/prodk123/Dolphin-Bot/pkg/board"
	"github.com/prodk123/Dolphin-Bot/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Search finds the best move for the side to move at a fixed depth.
type Search interface {
	// Search returns the score of the position, from white's perspective,
	// and the best move for the given color, if any.
	Search(ctx context.Context, b *board.Board, turn board.Color, depth int) (eval.Score, lang.Optional[board.Move])
}

// AdaptiveDepth selects the search depth for the position: 2 in the opening
// and while the board is full, 3 once 10 or fewer pieces remain.
func AdaptiveDepth(b *board.Board) int {
	if b.Ply() < 10 {
		return 2
	}
	if b.CountPieces() <= 10 {
		return 3
	}
	return 2
}
