package entity

// Snake - head position plus the body trail that follows it.
type Snake struct {
	Position

	Tails   *Trail
	JustAte bool
}

// NewSnake - creates a snake with its head at (x, y) and two segments below it.
func NewSnake(x, y int) *Snake {
	return &Snake{
		Position: Position{X: x, Y: y},
		Tails:    NewTrail(Position{X: x, Y: y + 2}, Position{X: x, Y: y + 1}),
	}
}

// NextXY - cell one step from the head along the heading.
func (that *Snake) NextXY(heading Heading) (Position, bool) {
	dx, dy, ok := heading.Delta()
	if !ok {
		return Position{}, false
	}

	return that.Position.Add(dx, dy), true
}

// Collides - whether p hits the body, ignoring the oldest segment which is vacated on the next move.
func (that *Snake) Collides(p Position) bool {
	return that.Tails.ContainsFrom(1, p)
}

// CanSwitchDir - blocks headings that would turn the snake back into its own neck.
func (that *Snake) CanSwitchDir(heading Heading) bool {
	next, ok := that.NextXY(heading)
	if !ok {
		return false
	}

	return !that.Collides(next)
}

// Move - advances the snake one cell, growing by one when it ate on the previous tick.
func (that *Snake) Move(heading Heading) {
	next, ok := that.NextXY(heading)
	if !ok {
		return
	}

	if that.JustAte {
		that.JustAte = false
	} else {
		that.Tails.PopFront()
	}

	that.Tails.PushBack(that.Position)
	that.Position = next
}

// Occupies - whether the head or any body segment is on p.
func (that *Snake) Occupies(p Position) bool {
	return that.Position.Equal(p) || that.Tails.ContainsFrom(0, p)
}

func (that *Snake) Head() Position {
	return that.Position
}

func (that *Snake) Length() int {
	return that.Tails.Len() + 1
}
