package search

import (
	"context"
	"math/rand"

	"github.com/prodk123/Dolphin-Bot/pkg/board"
	"github.com/seekerror/logw"
)

// Engine picks reply moves for one side: opening bias first, then the root
// search at adaptive depth, then a random legal move as a last resort.
type Engine struct {
	root Search
	rnd  *rand.Rand
}

func NewEngine(root Search, seed int64) *Engine {
	return &Engine{
		root: root,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// PickMove returns the engine's move for the color, or false if the color
// has no legal move.
func (e *Engine) PickMove(ctx context.Context, b *board.Board, turn board.Color) (board.Move, bool) {
	if m, ok := OpeningMove(e.rnd, b, turn); ok {
		logw.Debugf(ctx, "Opening bias move: %v", m)
		return m, true
	}

	depth := AdaptiveDepth(b)
	score, move := e.root.Search(ctx, b, turn, depth)
	if m, ok := move.V(); ok {
		logw.Debugf(ctx, "Search move: %v, score=%v, depth=%v", m, score, depth)
		return m, true
	}

	cands := b.AllLegalMoves(turn)
	if len(cands) == 0 {
		return board.Move{}, false
	}

	// The search came back empty in a non-terminal position. That is a bug:
	// fatal to the game, not the process. Keep the game playable.
	logw.Errorf(ctx, "Search returned no move in non-terminal position: %v", b)
	return cands[e.rnd.Intn(len(cands))].Move, true
}
