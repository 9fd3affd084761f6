package pkg

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// RandInt - returns a uniform random integer in [0, maxExcl), or 0 when maxExcl is not positive.
func RandInt(maxExcl int) int {
	if maxExcl <= 0 {
		return 0
	}

	return rand.Intn(maxExcl)
}

// NewRand - creates a seeded random source for one game.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Sleep - suspends for the full duration unless the context is canceled first.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// GenerateSessionID - generates a unique identifier for one run of the game.
func GenerateSessionID() string {
	return uuid.NewString()
}
