package search

import (
	"math/rand"

	"github.com/prodk123/Dolphin-Bot/pkg/board"
)

// openingPlies is how many of the color's own plies the opening bias covers.
const openingPlies = 6

// OpeningMove overrides search with a simple development bias during the
// color's first plies: a random center pawn push to the fourth rank, else a
// random unmoved knight or bishop developed toward the middle. Returns false
// when neither category applies and the caller should fall through to
// search.
func OpeningMove(rnd *rand.Rand, b *board.Board, turn board.Color) (board.Move, bool) {
	if b.Ply()/2 >= openingPlies {
		return board.Move{}, false
	}

	cands := b.AllLegalMoves(turn)

	// Each side's own fourth rank: row 4 for white (e4), row 3 for black (e5).
	fourthRank := 4
	if turn == board.Black {
		fourthRank = 3
	}

	var pushes []board.Move
	for _, c := range cands {
		if c.Piece.Kind == board.Pawn && c.Move.To.Row == fourthRank && 2 <= c.Move.To.Col && c.Move.To.Col <= 5 {
			pushes = append(pushes, c.Move)
		}
	}
	if len(pushes) > 0 {
		return pushes[rnd.Intn(len(pushes))], true
	}

	var developments []board.Move
	for _, c := range cands {
		if c.Piece.Moved || (c.Piece.Kind != board.Knight && c.Piece.Kind != board.Bishop) {
			continue
		}
		if 2 <= c.Move.To.Row && c.Move.To.Row <= 5 && 1 <= c.Move.To.Col && c.Move.To.Col <= 6 {
			developments = append(developments, c.Move)
		}
	}
	if len(developments) > 0 {
		return developments[rnd.Intn(len(developments))], true
	}
	return board.Move{}, false
}
