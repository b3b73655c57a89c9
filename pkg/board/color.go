package board

import "fmt"

// Color represents the playing side/color: white or black.
type Color uint8

const (
	White Color = iota
	Black
)

const (
	ZeroColor Color = 0
	NumColors Color = 2
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func (c Color) Unit() int {
	if c == White {
		return 1
	} else {
		return -1
	}
}

// PawnDirection returns the row delta a pawn of the color marches: White
// advances toward row 0 and Black toward row 7.
func (c Color) PawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

// StartRow returns the starting pawn row for the color.
func (c Color) StartRow() int {
	if c == White {
		return 6
	}
	return 1
}

func ParseColor(str string) (Color, bool) {
	switch str {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	default:
		return ZeroColor, false
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "?"
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(data []byte) error {
	color, ok := ParseColor(string(data))
	if !ok {
		return fmt.Errorf("invalid color: '%v'", string(data))
	}
	*c = color
	return nil
}
