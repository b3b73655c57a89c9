package game

import "errors"

// The error taxonomy reported to hosts. None of these mutate game state.
var (
	// ErrInvalidGame indicates an unknown game id.
	ErrInvalidGame = errors.New("invalid game")
	// ErrOutOfBounds indicates a square coordinate outside [0,7].
	ErrOutOfBounds = errors.New("square out of bounds")
	// ErrEmptySquare indicates a move from a square with no piece.
	ErrEmptySquare = errors.New("no piece at square")
	// ErrWrongColor indicates an attempt to move the engine's pieces.
	ErrWrongColor = errors.New("piece is not the player's color")
	// ErrIllegalMove indicates a (from,to) pair outside the legal-move set.
	ErrIllegalMove = errors.New("illegal move")
)
