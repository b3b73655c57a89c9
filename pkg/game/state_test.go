package game_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/prodk123/Dolphin-Bot/pkg/board"
	"github.com/prodk123/Dolphin-Bot/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateJSON(t *testing.T) {
	g := newGame(t)

	data, err := json.Marshal(g.State())
	require.NoError(t, err)

	var decoded struct {
		Board [8][8]*struct {
			Type  string `json:"type"`
			Color string `json:"color"`
		} `json:"board"`
		Captured map[string][]string `json:"captured_pieces"`
		Scores   map[string]int      `json:"scores"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.NotNil(t, decoded.Board[0][0])
	assert.Equal(t, "rook", decoded.Board[0][0].Type)
	assert.Equal(t, "black", decoded.Board[0][0].Color)
	require.NotNil(t, decoded.Board[7][4])
	assert.Equal(t, "king", decoded.Board[7][4].Type)
	assert.Equal(t, "white", decoded.Board[7][4].Color)
	assert.Nil(t, decoded.Board[3][3])

	assert.Contains(t, decoded.Scores, "white")
	assert.Contains(t, decoded.Scores, "black")
	assert.Contains(t, decoded.Captured, "white")
	assert.Contains(t, decoded.Captured, "black")
}

func TestStateJSONCaptures(t *testing.T) {
	ctx := context.Background()
	g := newGame(t)

	// Win a black center pawn with e4, if the reply offers one, to record a
	// capture.
	_, err := g.MakeMove(ctx, board.NewSq(6, 4), board.NewSq(4, 4))
	require.NoError(t, err)

	state := g.State()
	var captured board.Sq
	found := false
	for _, to := range []board.Sq{board.NewSq(3, 2), board.NewSq(3, 3), board.NewSq(3, 5)} {
		if cell := state.Board[to.Row][to.Col]; cell != nil && cell.Color == board.Black && cell.Kind == board.Pawn {
			if dests, err := g.LegalMoves(4, 4); err == nil {
				for _, d := range dests {
					if d == to {
						captured = to
						found = true
					}
				}
			}
		}
	}
	if !found {
		t.Skip("engine reply left no pawn capture for e4")
	}

	result, err := g.MakeMove(ctx, board.NewSq(4, 4), captured)
	require.NoError(t, err)

	data, err := json.Marshal(result.State)
	require.NoError(t, err)

	var decoded struct {
		Captured map[string][]string `json:"captured_pieces"`
		Scores   map[string]int      `json:"scores"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded.Captured["white"], "pawn")
	assert.GreaterOrEqual(t, decoded.Scores["white"], board.Pawn.Value())
}

func TestMoveWireJSON(t *testing.T) {
	expected := game.MoveWire{From: board.NewSq(6, 4), To: board.NewSq(4, 4)}

	t.Run("nested form", func(t *testing.T) {
		var m game.MoveWire
		require.NoError(t, json.Unmarshal([]byte(`{"from":{"row":6,"col":4},"to":{"row":4,"col":4}}`), &m))
		assert.Equal(t, expected, m)
	})

	t.Run("flattened form", func(t *testing.T) {
		var m game.MoveWire
		require.NoError(t, json.Unmarshal([]byte(`{"from_row":6,"from_col":4,"to_row":4,"to_col":4}`), &m))
		assert.Equal(t, expected, m)
	})

	t.Run("incomplete", func(t *testing.T) {
		var m game.MoveWire
		assert.Error(t, json.Unmarshal([]byte(`{"from_row":6,"from_col":4}`), &m))
	})

	t.Run("round trip", func(t *testing.T) {
		data, err := json.Marshal(expected)
		require.NoError(t, err)

		var m game.MoveWire
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, expected, m)
	})
}

func TestStatusJSON(t *testing.T) {
	t.Run("checkmate", func(t *testing.T) {
		data, err := json.Marshal(game.Status{Outcome: game.Checkmate, Winner: board.White})
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"checkmate","winner":"white"}`, string(data))
	})

	t.Run("stalemate", func(t *testing.T) {
		data, err := json.Marshal(game.Status{Outcome: game.Stalemate})
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"stalemate"}`, string(data))
	})
}
