package game

import (
	"encoding/json"
	"fmt"

	"github.com/prodk123/Dolphin-Bot/pkg/board"
)

// Cell is the wire shape of one occupied square.
type Cell struct {
	Kind  board.Kind  `json:"type"`
	Color board.Color `json:"color"`
}

// State is the wire shape of a game: the 8x8 grid listed from row 0
// (black's home) to row 7 (white's home), a nil cell per empty square, plus
// captures and scores per color.
type State struct {
	Board    [board.NumRows][board.NumCols]*Cell `json:"board"`
	Captured map[string][]board.Kind             `json:"captured_pieces"`
	Scores   map[string]int                      `json:"scores"`
}

func snapshot(b *board.Board) State {
	s := State{
		Captured: map[string][]board.Kind{},
		Scores:   map[string]int{},
	}
	for row := 0; row < board.NumRows; row++ {
		for col := 0; col < board.NumCols; col++ {
			if p := b.At(board.NewSq(row, col)); p != nil {
				s.Board[row][col] = &Cell{Kind: p.Kind, Color: p.Color}
			}
		}
	}
	for c := board.ZeroColor; c < board.NumColors; c++ {
		s.Captured[c.String()] = append([]board.Kind{}, b.Captured(c)...)
		s.Scores[c.String()] = b.Score(c)
	}
	return s
}

// Coord is the wire shape of a square.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveWire is the wire shape of a move. It unmarshals from either the
// nested form {"from":{"row":..,"col":..},"to":{..}} or the flattened form
// {"from_row":..,"from_col":..,"to_row":..,"to_col":..}, and marshals to
// the flattened form.
type MoveWire struct {
	From, To board.Sq
}

func (m MoveWire) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int{
		"from_row": m.From.Row,
		"from_col": m.From.Col,
		"to_row":   m.To.Row,
		"to_col":   m.To.Col,
	})
}

func (m *MoveWire) UnmarshalJSON(data []byte) error {
	var nested struct {
		From *Coord `json:"from"`
		To   *Coord `json:"to"`
	}
	if err := json.Unmarshal(data, &nested); err == nil && nested.From != nil && nested.To != nil {
		m.From = board.NewSq(nested.From.Row, nested.From.Col)
		m.To = board.NewSq(nested.To.Row, nested.To.Col)
		return nil
	}

	var flat struct {
		FromRow *int `json:"from_row"`
		FromCol *int `json:"from_col"`
		ToRow   *int `json:"to_row"`
		ToCol   *int `json:"to_col"`
	}
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	if flat.FromRow == nil || flat.FromCol == nil || flat.ToRow == nil || flat.ToCol == nil {
		return fmt.Errorf("invalid move request: %v", string(data))
	}
	m.From = board.NewSq(*flat.FromRow, *flat.FromCol)
	m.To = board.NewSq(*flat.ToRow, *flat.ToCol)
	return nil
}

// Outcome is a terminal game outcome.
type Outcome uint8

const (
	Checkmate Outcome = iota
	Stalemate
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "?"
	}
}

// Status reports a terminal game state. Winner is meaningful for Checkmate
// only.
type Status struct {
	Outcome Outcome
	Winner  board.Color
}

func (s Status) MarshalJSON() ([]byte, error) {
	if s.Outcome == Checkmate {
		return json.Marshal(map[string]string{
			"status": s.Outcome.String(),
			"winner": s.Winner.String(),
		})
	}
	return json.Marshal(map[string]string{"status": s.Outcome.String()})
}

func (s Status) String() string {
	if s.Outcome == Checkmate {
		return fmt.Sprintf("checkmate, %v wins", s.Winner)
	}
	return s.Outcome.String()
}
