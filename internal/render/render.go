package render

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/snake-terminal/internal/entity"
)

const (
	WallCell  = "██"
	EmptyCell = "  "
	BodyCell  = "x "
	FoodCell  = "O "

	GameOverLine = "Game Over!"
	WinLine      = "You win!"
)

// Render - draws the board with a one cell wall ring, followed by the score and the end messages.
func Render(snapshot entity.Snapshot) string {
	rows := snapshot.Height + 2
	cols := snapshot.Width + 2

	lines := make([][]string, rows)
	for y := -1; y <= snapshot.Height; y++ {
		line := make([]string, cols)
		for x := -1; x <= snapshot.Width; x++ {
			if x == -1 || y == -1 || x == snapshot.Width || y == snapshot.Height {
				line[x+1] = WallCell
				continue
			}
			line[x+1] = EmptyCell
		}
		lines[y+1] = line
	}

	put := func(p entity.Position, cell string) {
		row, col := p.Y+1, p.X+1
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return
		}
		lines[row][col] = cell
	}

	put(snapshot.Head, snapshot.Direction.Glyph())
	for _, segment := range snapshot.Tails {
		put(segment, BodyCell)
	}
	if snapshot.Food != nil {
		put(*snapshot.Food, FoodCell)
	}

	var buffer strings.Builder
	for i, line := range lines {
		if i > 0 {
			buffer.WriteString("\n")
		}
		buffer.WriteString(strings.Join(line, ""))
	}

	buffer.WriteString("\nScore: " + strconv.Itoa(snapshot.Score) + "\n")

	if snapshot.IsEnd {
		buffer.WriteString(GameOverLine + "\n")
	}

	if snapshot.Win {
		buffer.WriteString(WinLine + "\n")
	}

	return buffer.String()
}
