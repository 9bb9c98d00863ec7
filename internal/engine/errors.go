package engine

import "errors"

var (
	// ErrOutOfTurn is returned when the acting side does not hold the
	// initiative for that kind of action.
	ErrOutOfTurn = errors.New("out of turn")
	// ErrIllegalCard is returned when a card fails the beat or throw-in rules
	// or would exceed the table capacity.
	ErrIllegalCard = errors.New("illegal card")
	// ErrIndexOutOfRange is returned for a hand slot that does not exist.
	ErrIndexOutOfRange = errors.New("hand index out of range")
	// ErrGameOver is returned for any action after the winner is set.
	ErrGameOver = errors.New("game already over")
)
