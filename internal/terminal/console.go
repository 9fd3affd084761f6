package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const clearScreen = "\033[H\033[2J"

// Console - raw keyboard input plus full screen redraws on the output.
type Console struct {
	in  *os.File
	out io.Writer

	state *term.State
}

// Open - switches the input to raw mode when it is a terminal.
func Open(in *os.File, out io.Writer) (*Console, error) {
	console := &Console{in: in, out: out}

	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return console, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}

	console.state = state

	return console, nil
}

func (that *Console) Reader() io.Reader {
	return that.in
}

// Draw - clears the screen and writes the frame.
func (that *Console) Draw(frame string) error {
	return Draw(that.out, frame)
}

// Close - restores the terminal mode saved by Open.
func (that *Console) Close() error {
	if that.state == nil {
		return nil
	}

	if err := term.Restore(int(that.in.Fd()), that.state); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}

	that.state = nil

	return nil
}

// Draw - writes a frame to w after a clear screen sequence, with line feeds turned into CRLF for raw terminals.
func Draw(w io.Writer, frame string) error {
	output := clearScreen + strings.ReplaceAll(frame, "\n", "\r\n")

	if _, err := io.WriteString(w, output); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	return nil
}
