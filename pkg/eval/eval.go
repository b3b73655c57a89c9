// Package eval contains position evaluation logic and utilities.
package eval

import (
	"context"

	"github.com/prodk123/Dolphin-Bot/pkg/board"
)

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score in centipawns from white's
	// perspective.
	Evaluate(ctx context.Context, b *board.Board) Score
}

// Material evaluates material plus a cheap positional refinement: center
// control, pawn/knight piece-square tables, endgame king activity and pawn
// advancement, pawn-structure file coverage and a check term.
type Material struct{}

func (Material) Evaluate(ctx context.Context, b *board.Board) Score {
	switch {
	case b.IsCheckmate(board.Black):
		return CheckmateWin
	case b.IsCheckmate(board.White):
		return CheckmateLoss
	case b.IsStalemate(board.White), b.IsStalemate(board.Black):
		return 0
	}

	endgame := IsEndgame(b)

	var score int
	var pawnFiles [board.NumColors][board.NumCols]bool

	for row := 0; row < board.NumRows; row++ {
		for col := 0; col < board.NumCols; col++ {
			sq := board.NewSq(row, col)
			p := b.At(sq)
			if p == nil {
				continue
			}

			value := p.Kind.Value()
			if inCenter(sq) {
				value += 10
			}

			switch p.Kind {
			case board.Pawn:
				value += pstValue(&pawnPST, sq, p.Color)
				if endgame {
					value += 10 * pawnAdvance(sq, p.Color)
				}
				pawnFiles[p.Color][col] = true
			case board.Knight:
				value += pstValue(&knightPST, sq, p.Color)
			case board.King:
				if endgame {
					value += 200
				}
			}

			score += value * p.Color.Unit()
		}
	}

	score += 10 * (countFiles(pawnFiles[board.White]) - countFiles(pawnFiles[board.Black]))

	if b.IsInCheck(board.White) {
		score -= 50
	}
	if b.IsInCheck(board.Black) {
		score += 50
	}
	return Score(score)
}

// inCenter reports whether the square is in the extended center [2,5]x[2,5].
func inCenter(sq board.Sq) bool {
	return 2 <= sq.Row && sq.Row <= 5 && 2 <= sq.Col && sq.Col <= 5
}

// pawnAdvance returns the number of ranks the pawn has advanced from its
// start row toward promotion.
func pawnAdvance(sq board.Sq, c board.Color) int {
	if c == board.White {
		return board.White.StartRow() - sq.Row
	}
	return sq.Row - board.Black.StartRow()
}

func countFiles(files [board.NumCols]bool) int {
	n := 0
	for _, occupied := range files {
		if occupied {
			n++
		}
	}
	return n
}
