package entity

import "time"

// Result - outcome of one finished game.
type Result struct {
	ID         string    `json:"id"`
	Outcome    string    `json:"outcome"`
	Score      int       `json:"score"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Length     int       `json:"length"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewResult(id string, game *Game, finishedAt time.Time) *Result {
	return &Result{
		ID:         id,
		Outcome:    game.State(),
		Score:      game.Score,
		Width:      game.Width,
		Height:     game.Height,
		Length:     game.Snake.Length(),
		FinishedAt: finishedAt.UTC(),
	}
}

func (that *Result) IsWin() bool {
	return that.Outcome == StateWon
}
