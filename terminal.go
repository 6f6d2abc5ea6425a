package inquire

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts the terminal device a Console reads keys from.
//
// Implementations:
//   - realTerminal: go-tty for input, golang.org/x/term for raw mode
//   - mockTerminal: replays a fixed input string for tests
type terminalInterface interface {
	SetRaw() error                        // Enter raw mode for immediate key processing
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Get terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // Read a single Unicode character from input
	Close() error                         // Release the device
}

// realTerminal implements terminalInterface on top of the process terminal.
//
// The closed flag guards against the double-close panic go-tty has on Windows,
// and Size falls back to 80x24 so page and width calculations never divide by zero.
type realTerminal struct {
	tty           *tty.TTY
	closed        bool
	stdinFd       int
	originalState *term.State
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	if !term.IsTerminal(t.stdinFd) {
		return nil
	}
	// Capture a fresh baseline every time, prompts enter and leave raw mode once each
	state, err := term.GetState(t.stdinFd)
	if err != nil {
		return err
	}
	t.originalState = state
	_, err = term.MakeRaw(t.stdinFd)
	return err
}

func (t *realTerminal) Restore() error {
	if t.originalState == nil || !term.IsTerminal(t.stdinFd) {
		return nil
	}
	err := term.Restore(t.stdinFd, t.originalState)
	t.originalState = nil
	return err
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Close() error {
	if t.closed || t.tty == nil {
		return nil
	}
	t.closed = true
	return t.tty.Close()
}

// detectInteractive reports whether both stdin and stdout are attached to a terminal.
func detectInteractive() bool {
	return isTerminalFd(os.Stdin.Fd()) && isTerminalFd(os.Stdout.Fd())
}

func isTerminalFd(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
