package engine

import "errors"

var (
	// Coordinate codec.
	ErrBadSquareFormat  = errors.New("malformed square label")
	ErrSquareOutOfRange = errors.New("square out of range")

	// Move validation.
	ErrNoPiece            = errors.New("no piece at source square")
	ErrWrongColor         = errors.New("cannot move an opponent piece")
	ErrSameSquare         = errors.New("destination equals origin")
	ErrIllegalDestination = errors.New("destination is not a legal move")

	// State machine.
	ErrGameOver = errors.New("the game is over")
)
