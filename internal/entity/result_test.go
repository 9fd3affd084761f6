package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewResult(t *testing.T) {
	// Given: a won game
	game := NewGame(1, 3, &stubRandom{})
	game.UpdateGameState()

	// When: a result is built from it
	finishedAt := time.Date(2026, 10, 14, 15, 0, 0, 0, time.FixedZone("X", 3600))
	result := NewResult("abc", game, finishedAt)

	// Then: it captures the outcome in UTC
	assert.Equal(t, &Result{
		ID:         "abc",
		Outcome:    StateWon,
		Score:      FoodScore,
		Width:      1,
		Height:     3,
		Length:     3,
		FinishedAt: finishedAt.UTC(),
	}, result)
	assert.True(t, result.IsWin())
}
