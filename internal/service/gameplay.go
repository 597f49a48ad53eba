package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

type GamePlayService interface {
	PlayOut(ctx context.Context, game *entity.Game) error
}

type gamePlayService struct {
	logger *slog.Logger

	botService BotService
}

func NewGamePlayService(logger *slog.Logger, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger,
		botService: botService,
	}
}

// PlayOut lets the bot play both sides until the game is finished.
func (that *gamePlayService) PlayOut(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "PlayOut", "gameID", game.ID)

	for game.IsOngoing() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("play out interrupted: %w", ctx.Err())
		default:
		}

		turn := game.Turn

		move, err := that.botService.MakeTurn(game)
		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		log.Info("turn played", "mark", turn, "move", move.String(), "board", game.Board.String())
	}

	log.Info("game finished", "winner", game.Winner, "board", game.Board.String(), "turns", len(game.History))

	return nil
}
