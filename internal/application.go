package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/snake-terminal/internal/apperror"
	"github.com/rocketscienceinc/snake-terminal/internal/config"
	"github.com/rocketscienceinc/snake-terminal/internal/entity"
	"github.com/rocketscienceinc/snake-terminal/internal/input"
	"github.com/rocketscienceinc/snake-terminal/internal/pkg"
	"github.com/rocketscienceinc/snake-terminal/internal/repository"
	"github.com/rocketscienceinc/snake-terminal/internal/repository/storage"
	"github.com/rocketscienceinc/snake-terminal/internal/terminal"
	"github.com/rocketscienceinc/snake-terminal/internal/usecase"
)

// RunApp - runs the game until the player interrupts it.
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

	var results repository.ResultRepository
	if conf.Redis.Enabled() {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		results = repository.NewResultRepository(redisStorage)
		logBestResult(ctx, log, results)
	}

	console, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}

	defer func() {
		if err = console.Close(); err != nil {
			log.Error("could not restore terminal", "error", err)
		}
	}()

	handler := input.NewHandler(logger, 0)
	go func() {
		if listenErr := handler.Listen(ctx, console.Reader()); listenErr != nil {
			if !errors.Is(listenErr, apperror.ErrInterrupted) {
				log.Error("input listener failed", "error", listenErr)
			}
			cancel()
		}
	}()

	game := entity.NewGame(conf.Board.Width, conf.Board.Height, pkg.NewRand(uint64(time.Now().UnixNano())))

	session := usecase.NewSession(logger, game, console, handler.Requests(), results, conf.TickPeriod())
	if err = session.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func logBestResult(ctx context.Context, log *slog.Logger, results repository.ResultRepository) {
	best, err := results.Best(ctx, 1)
	if err != nil {
		log.Error("could not read best result", "error", err)
		return
	}

	if len(best) == 0 {
		log.Info("no recorded results yet")
		return
	}

	log.Info("best recorded result", "score", best[0].Score, "outcome", best[0].Outcome, "finished_at", best[0].FinishedAt)
}
