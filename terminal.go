package asciimotion

import (
	"fmt"
	"io"
)

// Terminal is the cursor control the Xterm display needs.
type Terminal interface {
	ResetCursor(rows int)
	ShowCursor(show bool)
}

// Xterm plays frames by writing escape sequences to Writer. Each frame is
// drawn over the previous one by moving the cursor back up.
type Xterm struct {
	Writer io.Writer
	rows   int
}

// Move the cursor to the beginning of the line and up rows
func (term *Xterm) ResetCursor(rows int) {
	if rows > 0 {
		fmt.Fprintf(term.Writer, "\033[999D\033[%dA", rows)
	}
}

func (term *Xterm) ShowCursor(show bool) {
	if show {
		io.WriteString(term.Writer, "\033[?12l\033[?25h")
	} else {
		io.WriteString(term.Writer, "\033[?25l")
	}
}

// Start clears the screen and hides the cursor. Interrupts reach the player
// through its context, so quit is unused.
func (term *Xterm) Start(quit func()) error {
	term.rows = 0
	term.ShowCursor(false)
	_, err := io.WriteString(term.Writer, "\033[2J\033[H")
	return err
}

// Show draws the status line and f, then parks the cursor at the top left.
func (term *Xterm) Show(f *TextFrame, status string) error {
	term.ResetCursor(term.rows)
	if _, err := fmt.Fprintf(term.Writer, "%s\033[K\n", status); err != nil {
		return err
	}
	if _, err := f.WriteTo(term.Writer); err != nil {
		return err
	}
	term.rows = f.Height() + 1
	return nil
}

// Stop leaves the cursor below the last frame, visible, with colors reset.
func (term *Xterm) Stop() error {
	term.ShowCursor(true)
	_, err := io.WriteString(term.Writer, sgrReset+"\n")
	return err
}
