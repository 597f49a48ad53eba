package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

// moveSearcher picks a move for the player to move on a board.
type moveSearcher func(board entity.Board) (entity.Move, error)

type botService struct {
	logger *slog.Logger

	search moveSearcher
}

// NewBotService returns a bot that always plays the optimal move.
func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		search: tictactoe.BestMove,
	}
}

// MakeTurn plays the best move for whichever side has the turn in game.
func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	if game.IsFinished() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	mark := game.Board.NextPlayer()

	move, err := that.search(game.Board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to find move: %w", err)
	}

	if err = game.MakeTurn(mark, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn", "gameID", game.ID, "mark", mark.String(), "move", move.String())

	return move, nil
}
