package pkg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandInt(t *testing.T) {
	t.Run("Stays within the exclusive bound", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			n := RandInt(5)

			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 5)
		}
	})

	t.Run("Returns zero for a non-positive bound", func(t *testing.T) {
		assert.Equal(t, 0, RandInt(0))
		assert.Equal(t, 0, RandInt(-3))
	})
}

func TestNewRand(t *testing.T) {
	// Given: two sources with the same seed
	a, b := NewRand(42), NewRand(42)

	// Then: they produce the same sequence
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestSleep(t *testing.T) {
	t.Run("Waits for the full duration", func(t *testing.T) {
		start := time.Now()

		err := Sleep(context.Background(), 20*time.Millisecond)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("Returns early when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Sleep(ctx, time.Hour)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestGenerateSessionID(t *testing.T) {
	first := GenerateSessionID()
	second := GenerateSessionID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
