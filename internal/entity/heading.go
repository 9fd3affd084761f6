package entity

import (
	"fmt"

	"github.com/rocketscienceinc/snake-terminal/internal/apperror"
)

type Heading int

const (
	Up Heading = iota + 1
	Down
	Left
	Right
)

var headingGlyphs = map[Heading]string{
	Up:    "^ ",
	Down:  "v ",
	Left:  "< ",
	Right: "> ",
}

// Delta - unit step of the heading; ok is false for an unknown heading.
func (that Heading) Delta() (int, int, bool) {
	switch that {
	case Up:
		return 0, -1, true
	case Down:
		return 0, 1, true
	case Left:
		return -1, 0, true
	case Right:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

func (that Heading) Valid() bool {
	_, _, ok := that.Delta()
	return ok
}

// Glyph - two character cell drawn for the snake head.
func (that Heading) Glyph() string {
	return headingGlyphs[that]
}

func (that Heading) Reverse() Heading {
	switch that {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return that
	}
}

func (that Heading) String() string {
	switch that {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("heading(%d)", int(that))
	}
}

// ParseHeading - converts the textual name of a heading back to its token.
func ParseHeading(name string) (Heading, error) {
	switch name {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownHeading, name)
	}
}
