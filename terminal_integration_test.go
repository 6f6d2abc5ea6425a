//go:build !windows

package inquire

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

// ptyTerminal reads keys from the follower side of a pseudo terminal, the
// way realTerminal reads them from the controlling terminal.
type ptyTerminal struct {
	tty    *os.File
	reader *bufio.Reader
	state  *term.State
}

func newPtyTerminal(t *testing.T) (*ptyTerminal, *os.File) {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("Cannot open a pseudo terminal in this environment: %v", err)
	}
	t.Cleanup(func() {
		_ = ptmx.Close()
		_ = tty.Close()
	})
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100}))
	return &ptyTerminal{tty: tty, reader: bufio.NewReader(tty)}, ptmx
}

func (p *ptyTerminal) SetRaw() error {
	state, err := term.MakeRaw(int(p.tty.Fd()))
	if err != nil {
		return err
	}
	p.state = state
	return nil
}

func (p *ptyTerminal) Restore() error {
	if p.state == nil {
		return nil
	}
	err := term.Restore(int(p.tty.Fd()), p.state)
	p.state = nil
	return err
}

func (p *ptyTerminal) Size() (width, height int, err error) {
	return term.GetSize(int(p.tty.Fd()))
}

func (p *ptyTerminal) ReadRune() (rune, int, error) { return p.reader.ReadRune() }

func (p *ptyTerminal) Close() error { return nil }

func TestPtyIsTerminal(t *testing.T) {
	terminal, _ := newPtyTerminal(t)

	assert.True(t, isTerminalFd(terminal.tty.Fd()))

	width, height, err := terminal.Size()
	require.NoError(t, err)
	assert.Equal(t, 100, width)
	assert.Equal(t, 30, height)
}

func TestPtyPromptRoundTrip(t *testing.T) {
	terminal, ptmx := newPtyTerminal(t)

	// Input written before the prompt enters raw mode would otherwise be
	// cooked by the line discipline
	original, err := term.MakeRaw(int(terminal.tty.Fd()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = term.Restore(int(terminal.tty.Fd()), original) })

	var out bytes.Buffer
	c := newConsole(Config{Output: &out}, terminal, true)
	assert.Equal(t, 100, c.width())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type result struct {
		fruits []string
		err    error
	}
	done := make(chan result, 1)
	go func() {
		fruits, err := MultiSelectPrompt{
			Title:   "Fruits?",
			Choices: Choices("Apple", "Banana", "Cherry"),
		}.Run(ctx, c)
		done <- result{fruits, err}
	}()

	_, err = ptmx.WriteString("\x1b[B\x1b[B \x1b[A\x1b[A \r")
	require.NoError(t, err)

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, []string{"Apple", "Cherry"}, r.fruits)
	case <-ctx.Done():
		t.Fatal("prompt did not resolve")
	}
	assert.Nil(t, terminal.state, "raw mode must be left after the prompt")
}
