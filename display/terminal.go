package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/bshapka/life-in-go/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// Clear the screen and move the cursor home.
	ansiClear = "\x1b[2J\x1b[H"
)

// TerminalRenderer draws each frame as block characters on a terminal.
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer renders to the given writer, usually os.Stdout.
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Display writes the grid as one frame, two characters per cell.
func (r *TerminalRenderer) Display(w *model.World) error {
	var frame strings.Builder
	for row := 0; row < w.Height(); row++ {
		for col := 0; col < w.Width(); col++ {
			if w.IsLive(row, col) {
				frame.WriteString(gridPosBlock)
			} else {
				frame.WriteString(gridPosEmpty)
			}
		}
		frame.WriteByte('\n')
	}

	if _, err := fmt.Fprint(r.out, frame.String()); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.out, ansiClear)
}

// QuitRequested always reports false: terminal runs stop via SIGINT.
func (r *TerminalRenderer) QuitRequested() bool {
	return false
}

// Close is a no-op for terminals.
func (r *TerminalRenderer) Close() error {
	return nil
}
