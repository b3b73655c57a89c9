// Package board contains the chess board representation, move generation,
// legality filtering and terminal detection.
package board

import (
	"fmt"
)

// Grid is a flat 8x8 grid of piece references. A nil entry is an empty
// square. Copying a Grid copies the references only, which is what the
// legality filter relies on for cheap scratch probing.
type Grid [NumRows][NumCols]*Piece

// At returns the piece at the square, or nil if empty or out of bounds.
func (g *Grid) At(sq Sq) *Piece {
	if !sq.InBounds() {
		return nil
	}
	return g[sq.Row][sq.Col]
}

// Board represents a chess board with captures, scores and move history.
// Not thread-safe.
type Board struct {
	squares Grid

	last    Move
	hasLast bool
	history []Move

	captured [NumColors][]Kind
	score    [NumColors]int

	cache *moveCache
}

// New returns a board in the standard opening position: white on rows 6-7,
// black on rows 0-1, main rank rook, knight, bishop, queen, king, bishop,
// knight, rook from column 0.
func New() *Board {
	b := &Board{cache: newMoveCache()}
	b.addPieces(White)
	b.addPieces(Black)
	return b
}

var mainRank = []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func (b *Board) addPieces(c Color) {
	pawnRow, mainRow := 6, 7
	if c == Black {
		pawnRow, mainRow = 1, 0
	}

	for col := 0; col < NumCols; col++ {
		b.squares[pawnRow][col] = NewPiece(Pawn, c)
		b.squares[mainRow][col] = NewPiece(mainRank[col], c)
	}
}

// Placement places a single piece for an arbitrary position.
type Placement struct {
	Sq    Sq
	Color Color
	Kind  Kind
	Moved bool
}

// NewPosition returns a board with the given pieces placed. It enforces the
// board invariants: in-bounds squares, no double occupancy, exactly one king
// per color and no pawn on rows 0 or 7.
func NewPosition(placements []Placement) (*Board, error) {
	b := &Board{cache: newMoveCache()}

	var kings [NumColors]int
	for _, p := range placements {
		if !p.Sq.InBounds() {
			return nil, fmt.Errorf("invalid placement square: %v", p.Sq)
		}
		if !p.Kind.IsValid() {
			return nil, fmt.Errorf("invalid placement kind: %v", p.Kind)
		}
		if b.squares[p.Sq.Row][p.Sq.Col] != nil {
			return nil, fmt.Errorf("square occupied twice: %v", p.Sq)
		}
		if p.Kind == Pawn && (p.Sq.Row == 0 || p.Sq.Row == NumRows-1) {
			return nil, fmt.Errorf("pawn on last rank: %v", p.Sq)
		}
		if p.Kind == King {
			kings[p.Color]++
		}

		piece := NewPiece(p.Kind, p.Color)
		piece.Moved = p.Moved
		b.squares[p.Sq.Row][p.Sq.Col] = piece
	}

	if kings[White] != 1 || kings[Black] != 1 {
		return nil, fmt.Errorf("invalid kings: white=%v, black=%v", kings[White], kings[Black])
	}
	return b, nil
}

// At returns the piece at the square, or nil if empty or out of bounds.
func (b *Board) At(sq Sq) *Piece {
	return b.squares.At(sq)
}

// Turn returns the color to move: white iff an even number of moves have
// been made.
func (b *Board) Turn() Color {
	if len(b.history)%2 == 0 {
		return White
	}
	return Black
}

// Ply returns the number of half-moves made.
func (b *Board) Ply() int {
	return len(b.history)
}

// History returns the applied moves in order. The slice is shared; callers
// must not mutate it.
func (b *Board) History() []Move {
	return b.history
}

// LastMove returns the last applied move, if any.
func (b *Board) LastMove() (Move, bool) {
	return b.last, b.hasLast
}

// Captured returns the kinds captured by the color, in capture order. The
// slice is shared; callers must not mutate it.
func (b *Board) Captured(c Color) []Kind {
	return b.captured[c]
}

// Score returns the sum of the values of pieces captured by the color.
func (b *Board) Score(c Color) int {
	return b.score[c]
}

// CountPieces returns the number of pieces on the board.
func (b *Board) CountPieces() int {
	n := 0
	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			if b.squares[row][col] != nil {
				n++
			}
		}
	}
	return n
}

// King returns the square of the color's king.
func (b *Board) King(c Color) (Sq, bool) {
	return kingSquare(&b.squares, c)
}

// Apply executes the move of the given piece and returns the piece captured
// at the destination, if any, for pairing with Undo. With testing=true the
// grid is mutated but captures, scores, history and Moved flags are left
// untouched; such probes must be reversed with Undo before any other
// mutation and are not reentrant across turns.
func (b *Board) Apply(p *Piece, m Move, testing bool) *Piece {
	captured := b.squares[m.To.Row][m.To.Col]
	if captured != nil && !testing {
		b.captured[p.Color] = append(b.captured[p.Color], captured.Kind)
		b.score[p.Color] += captured.Kind.Value()
	}

	b.squares[m.From.Row][m.From.Col] = nil
	b.squares[m.To.Row][m.To.Col] = p

	// Promotion is forced on arrival, always to a queen.
	if p.Kind == Pawn && (m.To.Row == 0 || m.To.Row == NumRows-1) {
		b.squares[m.To.Row][m.To.Col] = NewPiece(Queen, p.Color)
	}

	// Probes change the grid too, so the cache cannot survive them.
	b.cache.invalidate()

	if !testing {
		p.Moved = true
		b.last = m
		b.hasLast = true
		b.history = append(b.history, m)

		if p.Kind == King && m.IsCastle() {
			b.castleRook(m)
		}
	}
	return captured
}

// castleRook relocates the rook to the square the king crossed: col 5 for
// kingside, col 3 for queenside.
func (b *Board) castleRook(m Move) {
	row := m.From.Row
	rookFrom, rookTo := 7, 5
	if m.To.Col < m.From.Col {
		rookFrom, rookTo = 0, 3
	}

	rook := b.squares[row][rookFrom]
	if rook == nil {
		return
	}
	b.squares[row][rookFrom] = nil
	b.squares[row][rookTo] = rook
	rook.Moved = true
}

// Undo reverses an Apply of the given move, restoring the moving piece to
// its origin and the captured piece, if any, to the destination. If the move
// was the true last move rather than a probe, the capture and score
// bookkeeping, history and Moved flag are reversed as well.
func (b *Board) Undo(p *Piece, m Move, captured *Piece) {
	b.squares[m.From.Row][m.From.Col] = p
	b.squares[m.To.Row][m.To.Col] = captured
	b.cache.invalidate()

	if b.hasLast && b.last.Equals(m) {
		p.Moved = false
		if captured != nil {
			b.removeCaptured(p.Color, captured.Kind)
			b.score[p.Color] -= captured.Kind.Value()
		}
		b.hasLast = false
		b.history = b.history[:len(b.history)-1]
	}
}

func (b *Board) removeCaptured(c Color, kind Kind) {
	list := b.captured[c]
	for i := len(list) - 1; i >= 0; i-- {
		if list[i] == kind {
			b.captured[c] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (b *Board) String() string {
	return fmt.Sprintf("board{turn=%v, ply=%v, score=%v/%v}", b.Turn(), b.Ply(), b.score[White], b.score[Black])
}
