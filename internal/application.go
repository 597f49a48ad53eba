package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
)

// RunApp - solves the configured position by letting the bot play both sides.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	game, err := Solve(ctx, logger, conf.Position)
	if err != nil {
		return err
	}

	log.Info("Solved position", "gameID", game.ID, "winner", game.Winner, "moves", game.History)

	return nil
}

// Solve plays out position with optimal moves for both sides and returns the finished game.
func Solve(ctx context.Context, logger *slog.Logger, position string) (*entity.Game, error) {
	board := entity.Initial()
	if position != "" {
		var err error
		if board, err = entity.ParseBoard(position); err != nil {
			return nil, fmt.Errorf("could not parse position: %w", err)
		}
	}

	game := entity.NewGame(uuid.NewString(), board)

	botService := service.NewBotService(logger)
	gamePlayService := service.NewGamePlayService(logger, botService)

	if err := gamePlayService.PlayOut(ctx, game); err != nil {
		return nil, fmt.Errorf("could not play out game: %w", err)
	}

	return game, nil
}
