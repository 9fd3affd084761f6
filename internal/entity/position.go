package entity

import "fmt"

// Position - a cell of the board, X grows to the right and Y grows downward.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Position) Add(dx, dy int) Position {
	return Position{X: that.X + dx, Y: that.Y + dy}
}

func (that Position) Equal(other Position) bool {
	return that.X == other.X && that.Y == other.Y
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.X, that.Y)
}
