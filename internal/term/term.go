// Package term answers questions about the controlling terminal.
package term

import (
	"os"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// Size returns the terminal's columns and lines. Stdout and stdin may be
// redirected, so stderr is asked first.
func Size() (cols, lines int, err error) {
	for _, f := range []*os.File{os.Stderr, os.Stdout, os.Stdin} {
		ws, werr := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
		if werr != nil {
			err = werr
			continue
		}
		if ws.Col > 0 && ws.Row > 0 {
			return int(ws.Col), int(ws.Row), nil
		}
	}
	return 0, 0, err
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}

// Interactive reports whether frames can be played: both stdin, for quit
// keys, and stdout must be terminals.
func Interactive() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}
