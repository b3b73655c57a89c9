package board_test

import (
	"testing"

	"github.com/prodk123/Dolphin-Bot/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, b *board.Board, moves ...string) {
	t.Helper()

	for _, str := range moves {
		m, err := board.ParseMove(str)
		require.NoError(t, err)

		p := b.At(m.From)
		require.NotNil(t, p, "no piece for %v", str)
		require.Contains(t, b.LegalMoves(m.From), m, "illegal: %v", str)
		b.Apply(p, m, false)
	}
}

func TestScholarsMate(t *testing.T) {
	b := board.New()
	play(t, b, "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "a7a6")

	require.False(t, b.IsCheckmate(board.Black))
	play(t, b, "h5f7")

	assert.True(t, b.IsInCheck(board.Black))
	assert.True(t, b.IsCheckmate(board.Black))
	assert.False(t, b.IsStalemate(board.Black))
	assert.False(t, b.IsCheckmate(board.White))
}

func TestFoolsMate(t *testing.T) {
	b := board.New()
	play(t, b, "f2f3", "e7e5", "g2g4", "d8h4")

	assert.True(t, b.IsInCheck(board.White))
	assert.True(t, b.IsCheckmate(board.White))
	assert.False(t, b.IsCheckmate(board.Black))
}

func TestStalemate(t *testing.T) {
	b := position(t, []board.Placement{
		{Sq: board.NewSq(0, 0), Color: board.White, Kind: board.King, Moved: true},
		{Sq: board.NewSq(2, 2), Color: board.Black, Kind: board.King, Moved: true},
		{Sq: board.NewSq(2, 1), Color: board.Black, Kind: board.Queen},
	})

	assert.False(t, b.IsInCheck(board.White))
	assert.Empty(t, b.LegalMoves(board.NewSq(0, 0)))
	assert.True(t, b.IsStalemate(board.White))
	assert.False(t, b.IsCheckmate(board.White))
}
