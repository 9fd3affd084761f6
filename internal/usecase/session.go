package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/snake-terminal/internal/entity"
	"github.com/rocketscienceinc/snake-terminal/internal/pkg"
	"github.com/rocketscienceinc/snake-terminal/internal/render"
)

type console interface {
	Draw(frame string) error
}

type resultRecorder interface {
	Save(ctx context.Context, result *entity.Result) error
}

// Session - drives one game at a fixed tick rate.
type Session struct {
	logger *slog.Logger

	id       string
	game     *entity.Game
	console  console
	requests <-chan entity.Heading
	recorder resultRecorder
	tick     time.Duration

	reported bool
	now      func() time.Time
}

// NewSession - recorder may be nil when results are not stored.
func NewSession(logger *slog.Logger, game *entity.Game, console console, requests <-chan entity.Heading, recorder resultRecorder, tick time.Duration) *Session {
	id := pkg.GenerateSessionID()

	return &Session{
		logger: logger.With("component", "session", "session_id", id),

		id:       id,
		game:     game,
		console:  console,
		requests: requests,
		recorder: recorder,
		tick:     tick,
		now:      time.Now,
	}
}

func (that *Session) ID() string {
	return that.id
}

// Run - sleeps a full tick, updates and redraws, until the context is canceled.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")
	log.Info("session started", "tick", that.tick.String(), "width", that.game.Width, "height", that.game.Height)

	for {
		if err := pkg.Sleep(ctx, that.tick); err != nil {
			log.Info("session stopped", "score", that.game.Score, "state", that.game.State())
			return nil
		}

		if err := that.Tick(ctx); err != nil {
			return err
		}
	}
}

// Tick - applies pending direction requests, advances the game and draws it.
func (that *Session) Tick(ctx context.Context) error {
	that.applyRequests()

	that.game.UpdateGameState()

	if that.game.IsFinished() && !that.reported {
		that.reported = true
		that.report(ctx)
	}

	if err := that.console.Draw(render.Render(that.game.Snapshot())); err != nil {
		return fmt.Errorf("failed to draw frame: %w", err)
	}

	return nil
}

func (that *Session) applyRequests() {
	for {
		select {
		case heading := <-that.requests:
			if !that.game.ChangeDirection(heading) {
				that.logger.Debug("direction change ignored", "heading", heading.String())
			}
		default:
			return
		}
	}
}

func (that *Session) report(ctx context.Context) {
	log := that.logger.With("method", "report")

	result := entity.NewResult(that.id, that.game, that.now())
	log.Info("game finished", "outcome", result.Outcome, "score", result.Score, "length", result.Length)

	if that.recorder == nil {
		return
	}

	if err := that.recorder.Save(ctx, result); err != nil {
		log.Error("failed to record result", "error", err)
	}
}
