package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/snake-terminal/internal/apperror"
	"github.com/rocketscienceinc/snake-terminal/internal/entity"
)

const (
	InterruptKey = 0x03

	defaultQueueSize = 16
)

var KeyMap = map[byte]entity.Heading{
	'w': entity.Up,
	'a': entity.Left,
	's': entity.Down,
	'd': entity.Right,
}

type Handler struct {
	logger   *slog.Logger
	requests chan entity.Heading
}

func NewHandler(logger *slog.Logger, queueSize int) *Handler {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &Handler{
		logger:   logger.With("component", "input"),
		requests: make(chan entity.Heading, queueSize),
	}
}

// Requests - headings asked for by the player, in the order the keys were pressed.
func (that *Handler) Requests() <-chan entity.Heading {
	return that.requests
}

// Listen - reads raw key presses until EOF, context cancellation or the interrupt key.
func (that *Handler) Listen(ctx context.Context, reader io.Reader) error {
	log := that.logger.With("method", "Listen")

	buf := make([]byte, 16)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		n, err := reader.Read(buf)
		for _, key := range buf[:n] {
			if key == InterruptKey {
				log.Info("interrupt key pressed")
				return apperror.ErrInterrupted
			}

			that.HandleKey(key)
		}

		if errors.Is(err, io.EOF) {
			log.Debug("input closed")
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
}

// HandleKey - queues the heading mapped to the key; unknown keys are ignored.
func (that *Handler) HandleKey(key byte) bool {
	heading, ok := KeyMap[key]
	if !ok {
		return false
	}

	select {
	case that.requests <- heading:
		return true
	default:
		that.logger.Debug("heading request dropped, queue is full", "heading", heading.String())
		return false
	}
}
