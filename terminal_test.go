package inquire

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealTerminalInterface(t *testing.T) {
	if os.Getenv("GITHUB_ACTIONS") == "" {
		t.Skip("Skipping real terminal test in local development")
	}

	// Opening the controlling terminal fails in headless environments
	terminal, err := newRealTerminal()
	if err != nil {
		t.Skipf("Cannot create real terminal in this environment: %v", err)
	}

	require.NoError(t, terminal.SetRaw())
	require.NoError(t, terminal.Restore())
	require.NoError(t, terminal.Restore(), "restore without raw mode is a no-op")

	width, height, err := terminal.Size()
	if err != nil {
		t.Logf("Size returned error (may be expected in CI): %v", err)
	}
	assert.Positive(t, width)
	assert.Positive(t, height)

	assert.NoError(t, terminal.Close())
	assert.NoError(t, terminal.Close(), "second close must not fail")
}

func TestMockTerminalInterface(t *testing.T) {
	t.Parallel()

	mock := newMockTerminal("hé")

	require.NoError(t, mock.SetRaw())
	assert.True(t, mock.rawMode)

	width, height, err := mock.Size()
	require.NoError(t, err)
	assert.Equal(t, 80, width)
	assert.Equal(t, 24, height)

	var seen []int
	mock.onRead = func(reads int) { seen = append(seen, reads) }

	r, _, err := mock.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'h', r)
	r, _, err = mock.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'é', r)
	_, _, err = mock.ReadRune()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []int{0, 1, 2}, seen)

	require.NoError(t, mock.Restore())
	assert.False(t, mock.rawMode)
	require.NoError(t, mock.Close())
	assert.True(t, mock.closed)
}

func TestIsTerminalFd(t *testing.T) {
	t.Parallel()

	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, isTerminalFd(f.Fd()), "a regular file is not a terminal")
}
