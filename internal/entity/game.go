package entity

const FoodScore = 100

const (
	StateActive = "active"
	StateLost   = "lost"
	StateWon    = "won"
)

// Random - source of uniform integers in [0, n).
type Random interface {
	Intn(n int) int
}

type Game struct {
	Width  int
	Height int

	Snake            *Snake
	Food             *Position
	Score            int
	CurrentDirection Heading
	IsEnd            bool
	Win              bool

	rnd Random
}

// Snapshot - read-only copy of the game used for rendering and result recording.
type Snapshot struct {
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Head      Position   `json:"head"`
	Tails     []Position `json:"tails"`
	Food      *Position  `json:"food,omitempty"`
	Score     int        `json:"score"`
	Direction Heading    `json:"direction"`
	IsEnd     bool       `json:"is_end"`
	Win       bool       `json:"win"`
}

// NewGame - creates a game with the snake in the middle of the board heading up, and places the first food.
func NewGame(width, height int, rnd Random) *Game {
	game := &Game{
		Width:            width,
		Height:           height,
		Snake:            NewSnake(width/2, height/2),
		CurrentDirection: Up,
		rnd:              rnd,
	}

	game.MakeFood()

	return game
}

// MakeFood - places food on a random free cell, or wins the game when there is none.
func (that *Game) MakeFood() {
	var candidates []Position

	for y := 0; y < that.Height; y++ {
		for x := 0; x < that.Width; x++ {
			cell := Position{X: x, Y: y}

			if that.Snake.Occupies(cell) {
				continue
			}

			if that.Food != nil && that.Food.Equal(cell) {
				continue
			}

			candidates = append(candidates, cell)
		}
	}

	if len(candidates) == 0 {
		that.Win = true
		that.IsEnd = false
		that.Food = nil

		return
	}

	pick := candidates[that.rnd.Intn(len(candidates))]
	that.Food = &pick
}

func (that *Game) IsWall(x, y int) bool {
	return x == -1 || y == -1 || x == that.Width || y == that.Height
}

// UpdateGameState - runs one tick of the game.
func (that *Game) UpdateGameState() {
	if that.IsFinished() {
		return
	}

	next, ok := that.Snake.NextXY(that.CurrentDirection)
	if !ok {
		return
	}

	if that.IsWall(next.X, next.Y) {
		that.IsEnd = true
		return
	}

	if that.Snake.Collides(next) {
		that.IsEnd = true
		return
	}

	that.Snake.Move(that.CurrentDirection)

	if that.Food != nil && that.Food.Equal(that.Snake.Head()) {
		that.Snake.JustAte = true
		that.Score += FoodScore
		that.MakeFood()
	}
}

// ChangeDirection - applies a requested heading; illegal requests are ignored and reported as false.
func (that *Game) ChangeDirection(heading Heading) bool {
	if !that.Snake.CanSwitchDir(heading) {
		return false
	}

	that.CurrentDirection = heading

	return true
}

func (that *Game) IsFinished() bool {
	return that.IsEnd || that.Win
}

func (that *Game) State() string {
	switch {
	case that.Win:
		return StateWon
	case that.IsEnd:
		return StateLost
	default:
		return StateActive
	}
}

func (that *Game) Snapshot() Snapshot {
	snapshot := Snapshot{
		Width:     that.Width,
		Height:    that.Height,
		Head:      that.Snake.Head(),
		Tails:     that.Snake.Tails.Slice(),
		Score:     that.Score,
		Direction: that.CurrentDirection,
		IsEnd:     that.IsEnd,
		Win:       that.Win,
	}

	if that.Food != nil {
		food := *that.Food
		snapshot.Food = &food
	}

	return snapshot
}
