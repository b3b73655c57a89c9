package eval

import "github.com/prodk123/Dolphin-Bot/pkg/board"

// Piece-square tables refine the material value of pawns and knights by a
// small positional fraction, one centipawn per table unit. Tables are laid
// out in board row order (row 0 is black's home rank), indexed row*8+col
// for white and mirrored as (7-row)*8+col for black.

// pawnPST rewards advancement and central pawns, and discourages leaving
// the central pawns at home.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// knightPST centralizes knights; rim knights are dim.
var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

func pstValue(table *[64]int, sq board.Sq, c board.Color) int {
	row := sq.Row
	if c == board.Black {
		row = board.NumRows - 1 - row
	}
	return table[row*board.NumCols+sq.Col]
}
