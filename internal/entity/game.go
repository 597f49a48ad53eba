package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

// Game is one match. Boards stay immutable; the game only swaps which board is current.
type Game struct {
	ID      string `json:"id"`
	Board   Board  `json:"board"`
	Winner  string `json:"winner"`
	Status  string `json:"status"`
	Turn    string `json:"player_turn"`
	History []Move `json:"history,omitempty"`
}

// NewGame starts a match from the given position, which may already be finished.
func NewGame(id string, board Board) *Game {
	game := &Game{
		ID:    id,
		Board: board,
	}

	game.UpdateGameState()

	return game
}

// UpdateGameState derives status, winner and turn from the current board.
func (that *Game) UpdateGameState() {
	switch outcome := that.Board.Outcome(); outcome {
	// one player wins
	case XWins, OWins:
		winner, _ := that.Board.Winner()
		that.Winner = winner.String()
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case Draw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Winner = ""
		that.Status = StatusOngoing
		that.Turn = that.Board.NextPlayer().String()
	}
}

func (that *Game) MakeTurn(mark Mark, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark.String() {
		return apperror.ErrNotYourTurn
	}

	next, err := that.Board.ApplyMove(move)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = next
	that.History = append(that.History, move)

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
