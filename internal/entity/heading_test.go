package entity

import (
	"testing"

	"github.com/rocketscienceinc/snake-terminal/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeading_Delta(t *testing.T) {
	cases := map[Heading][2]int{
		Up:    {0, -1},
		Down:  {0, 1},
		Left:  {-1, 0},
		Right: {1, 0},
	}

	for heading, want := range cases {
		dx, dy, ok := heading.Delta()

		require.True(t, ok, heading.String())
		assert.Equal(t, want, [2]int{dx, dy}, heading.String())
	}

	_, _, ok := Heading(0).Delta()
	assert.False(t, ok)
}

func TestHeading_Reverse(t *testing.T) {
	assert.Equal(t, Down, Up.Reverse())
	assert.Equal(t, Up, Down.Reverse())
	assert.Equal(t, Right, Left.Reverse())
	assert.Equal(t, Left, Right.Reverse())
}

func TestHeading_Glyph(t *testing.T) {
	assert.Equal(t, "^ ", Up.Glyph())
	assert.Equal(t, "v ", Down.Glyph())
	assert.Equal(t, "< ", Left.Glyph())
	assert.Equal(t, "> ", Right.Glyph())
	assert.Empty(t, Heading(42).Glyph())
}

func TestParseHeading(t *testing.T) {
	t.Run("Round trips every heading", func(t *testing.T) {
		for _, heading := range []Heading{Up, Down, Left, Right} {
			parsed, err := ParseHeading(heading.String())

			require.NoError(t, err)
			assert.Equal(t, heading, parsed)
		}
	})

	t.Run("Returns ErrUnknownHeading for an unknown name", func(t *testing.T) {
		_, err := ParseHeading("north")

		assert.ErrorIs(t, err, apperror.ErrUnknownHeading)
	})
}
