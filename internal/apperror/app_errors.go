package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrInvalidMove  = errors.New("invalid move")
	ErrNoLegalMove  = errors.New("no legal move")
	ErrInvalidBoard = errors.New("invalid board")
)
