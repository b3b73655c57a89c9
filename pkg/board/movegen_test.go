package board_test

import (
	"testing"

	"github.com/prodk123/Dolphin-Bot/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func position(t *testing.T, placements []board.Placement) *board.Board {
	t.Helper()

	b, err := board.NewPosition(placements)
	require.NoError(t, err)
	return b
}

func destinations(moves []board.Move) []board.Sq {
	var dests []board.Sq
	for _, m := range moves {
		dests = append(dests, m.To)
	}
	return dests
}

func TestKnightMoves(t *testing.T) {
	b := position(t, []board.Placement{
		{Sq: board.NewSq(4, 4), Color: board.White, Kind: board.Knight},
		{Sq: board.NewSq(7, 0), Color: board.White, Kind: board.King},
		{Sq: board.NewSq(0, 7), Color: board.Black, Kind: board.King},
	})

	moves := b.LegalMoves(board.NewSq(4, 4))
	assert.Len(t, moves, 8)
}

func TestRookMoves(t *testing.T) {
	b := position(t, []board.Placement{
		{Sq: board.NewSq(0, 0), Color: board.White, Kind: board.Rook},
		{Sq: board.NewSq(7, 7), Color: board.White, Kind: board.King},
		{Sq: board.NewSq(4, 4), Color: board.Black, Kind: board.King},
	})

	moves := b.LegalMoves(board.NewSq(0, 0))
	assert.Len(t, moves, 14)
}

func TestPawnMoves(t *testing.T) {
	t.Run("double step from start row", func(t *testing.T) {
		b := board.New()

		moves := b.LegalMoves(board.NewSq(6, 4))
		assert.ElementsMatch(t, []board.Sq{board.NewSq(5, 4), board.NewSq(4, 4)}, destinations(moves))
	})

	t.Run("double step suppressed by blocker", func(t *testing.T) {
		b := position(t, []board.Placement{
			{Sq: board.NewSq(6, 4), Color: board.White, Kind: board.Pawn},
			{Sq: board.NewSq(4, 4), Color: board.Black, Kind: board.Knight},
			{Sq: board.NewSq(7, 0), Color: board.White, Kind: board.King},
			{Sq: board.NewSq(0, 7), Color: board.Black, Kind: board.King},
		})

		moves := b.LegalMoves(board.NewSq(6, 4))
		assert.ElementsMatch(t, []board.Sq{board.NewSq(5, 4)}, destinations(moves))
	})

	t.Run("single step blocked", func(t *testing.T) {
		b := position(t, []board.Placement{
			{Sq: board.NewSq(6, 4), Color: board.White, Kind: board.Pawn},
			{Sq: board.NewSq(5, 4), Color: board.Black, Kind: board.Knight},
			{Sq: board.NewSq(7, 0), Color: board.White, Kind: board.King},
			{Sq: board.NewSq(0, 7), Color: board.Black, Kind: board.King},
		})

		assert.Empty(t, b.LegalMoves(board.NewSq(6, 4)))
	})

	t.Run("diagonal captures only on enemies", func(t *testing.T) {
		b := position(t, []board.Placement{
			{Sq: board.NewSq(4, 4), Color: board.White, Kind: board.Pawn},
			{Sq: board.NewSq(3, 4), Color: board.Black, Kind: board.Pawn},
			{Sq: board.NewSq(3, 3), Color: board.Black, Kind: board.Knight},
			{Sq: board.NewSq(3, 5), Color: board.White, Kind: board.Knight},
			{Sq: board.NewSq(7, 0), Color: board.White, Kind: board.King},
			{Sq: board.NewSq(0, 7), Color: board.Black, Kind: board.King},
		})

		moves := b.LegalMoves(board.NewSq(4, 4))
		assert.ElementsMatch(t, []board.Sq{board.NewSq(3, 3)}, destinations(moves))
	})
}

func TestKingMovesNearQueen(t *testing.T) {
	b := position(t, []board.Placement{
		{Sq: board.NewSq(4, 4), Color: board.White, Kind: board.King},
		{Sq: board.NewSq(3, 4), Color: board.Black, Kind: board.Queen},
		{Sq: board.NewSq(0, 0), Color: board.Black, Kind: board.King},
	})

	moves := b.LegalMoves(board.NewSq(4, 4))
	assert.Less(t, len(moves), 8)
	assert.Contains(t, destinations(moves), board.NewSq(3, 4), "undefended queen is capturable")
}

func TestCastling(t *testing.T) {
	placements := []board.Placement{
		{Sq: board.NewSq(7, 4), Color: board.White, Kind: board.King},
		{Sq: board.NewSq(7, 7), Color: board.White, Kind: board.Rook},
		{Sq: board.NewSq(7, 0), Color: board.White, Kind: board.Rook},
		{Sq: board.NewSq(0, 4), Color: board.Black, Kind: board.King},
	}

	t.Run("both sides generated", func(t *testing.T) {
		b := position(t, placements)

		dests := destinations(b.LegalMoves(board.NewSq(7, 4)))
		assert.Contains(t, dests, board.NewSq(7, 6), "kingside")
		assert.Contains(t, dests, board.NewSq(7, 2), "queenside")
	})

	t.Run("apply moves rook and sets flags", func(t *testing.T) {
		b := position(t, placements)
		king := b.At(board.NewSq(7, 4))

		b.Apply(king, board.Move{From: board.NewSq(7, 4), To: board.NewSq(7, 6)}, false)

		assert.Same(t, king, b.At(board.NewSq(7, 6)))
		rook := b.At(board.NewSq(7, 5))
		require.NotNil(t, rook)
		assert.Equal(t, board.Rook, rook.Kind)
		assert.True(t, king.Moved)
		assert.True(t, rook.Moved)
		assert.Nil(t, b.At(board.NewSq(7, 4)))
		assert.Nil(t, b.At(board.NewSq(7, 7)))
	})

	t.Run("rejected through attacked transit square", func(t *testing.T) {
		b := position(t, append([]board.Placement{
			{Sq: board.NewSq(0, 5), Color: board.Black, Kind: board.Rook},
		}, placements...))

		dests := destinations(b.LegalMoves(board.NewSq(7, 4)))
		assert.NotContains(t, dests, board.NewSq(7, 6))
		assert.Contains(t, dests, board.NewSq(7, 2), "queenside unaffected")
	})

	t.Run("rejected while in check", func(t *testing.T) {
		b := position(t, []board.Placement{
			{Sq: board.NewSq(7, 4), Color: board.White, Kind: board.King},
			{Sq: board.NewSq(7, 7), Color: board.White, Kind: board.Rook},
			{Sq: board.NewSq(3, 4), Color: board.Black, Kind: board.Rook},
			{Sq: board.NewSq(0, 0), Color: board.Black, Kind: board.King},
		})

		require.True(t, b.IsInCheck(board.White))
		dests := destinations(b.LegalMoves(board.NewSq(7, 4)))
		assert.NotContains(t, dests, board.NewSq(7, 6))
	})

	t.Run("rejected after king moved", func(t *testing.T) {
		b := position(t, []board.Placement{
			{Sq: board.NewSq(7, 4), Color: board.White, Kind: board.King, Moved: true},
			{Sq: board.NewSq(7, 7), Color: board.White, Kind: board.Rook},
			{Sq: board.NewSq(0, 4), Color: board.Black, Kind: board.King},
		})

		dests := destinations(b.LegalMoves(board.NewSq(7, 4)))
		assert.NotContains(t, dests, board.NewSq(7, 6))
	})
}

func TestSelfCheckProhibited(t *testing.T) {
	b := position(t, []board.Placement{
		{Sq: board.NewSq(7, 4), Color: board.White, Kind: board.King},
		{Sq: board.NewSq(6, 4), Color: board.White, Kind: board.Bishop},
		{Sq: board.NewSq(0, 4), Color: board.Black, Kind: board.Rook},
		{Sq: board.NewSq(0, 0), Color: board.Black, Kind: board.King},
	})

	// Every bishop move leaves column 4 and exposes the king to the rook.
	assert.Empty(t, b.LegalMoves(board.NewSq(6, 4)))
	assert.NotEmpty(t, b.PseudoLegalMoves(board.NewSq(6, 4)))
}
