package inquire

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(width int) (*renderer, *bytes.Buffer) {
	var out bytes.Buffer
	return newRenderer(&out, ThemeDefault, func() int { return width }), &out
}

func plain(texts ...string) line {
	l := make(line, len(texts))
	for i, t := range texts {
		l[i] = span{text: t}
	}
	return l
}

func TestRendererRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		width int
		f     frame
		want  string
	}{
		{
			name:  "single line with cursor",
			width: 80,
			f:     frame{lines: []line{plain("Name? ", "bob")}, cursorCol: 9},
			want:  "\r\x1b[J" + "Name? bob" + "\r\x1b[9C\x1b[?25h",
		},
		{
			name:  "cursor at column zero",
			width: 80,
			f:     frame{lines: []line{plain("x")}},
			want:  "\r\x1b[J" + "x" + "\r\x1b[?25h",
		},
		{
			name:  "hidden cursor parks on the first line",
			width: 80,
			f:     frame{lines: []line{plain("Pick"), plain("> a"), plain("  b")}, cursorCol: -1},
			want:  "\r\x1b[J" + "Pick\r\n> a\r\n  b" + "\x1b[2A\r\x1b[?25l",
		},
		{
			name:  "long lines are truncated",
			width: 5,
			f:     frame{lines: []line{plain("hello", " world")}},
			want:  "\r\x1b[J" + "hello" + "\r\x1b[?25h",
		},
		{
			name:  "wide runes are truncated by cell width",
			width: 5,
			f:     frame{lines: []line{plain("日本語")}},
			want:  "\r\x1b[J" + "日本" + "\r\x1b[?25h",
		},
		{
			name:  "cursor column clamped to the width",
			width: 5,
			f:     frame{lines: []line{plain("abc")}, cursorCol: 30},
			want:  "\r\x1b[J" + "abc" + "\r\x1b[4C\x1b[?25h",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, out := newTestRenderer(tt.width)
			require.NoError(t, r.render(tt.f))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRendererRedrawsInPlace(t *testing.T) {
	t.Parallel()

	r, out := newTestRenderer(80)

	// Cursor left on the second of three lines
	require.NoError(t, r.render(frame{lines: []line{plain("a"), plain("b"), plain("c")}, cursorLine: 1, cursorCol: 1}))
	out.Reset()

	require.NoError(t, r.render(frame{lines: []line{plain("a")}, cursorCol: 1}))
	assert.True(t, strings.HasPrefix(out.String(), "\x1b[1A\r\x1b[J"), "redraw must start at the top of the previous block, got %q", out.String())
	assert.Equal(t, 1, r.lastLines)
}

func TestRendererFinish(t *testing.T) {
	t.Parallel()

	r, out := newTestRenderer(80)
	require.NoError(t, r.finish(frame{lines: []line{plain("Pick"), plain("> a")}, cursorCol: -1}))

	want := "\r\x1b[J" + "Pick\r\n> a" + "\x1b[1A\r\x1b[?25l" + "\x1b[1B\r\n\x1b[?25h"
	assert.Equal(t, want, out.String())
	assert.Zero(t, r.lastLines)
	assert.Zero(t, r.cursorLine)

	// The next prompt starts fresh below
	out.Reset()
	require.NoError(t, r.render(frame{lines: []line{plain("next")}}))
	assert.True(t, strings.HasPrefix(out.String(), "\r\x1b[J"))
}

func TestRendererColors(t *testing.T) {
	t.Parallel()

	r, out := newTestRenderer(80)
	require.NoError(t, r.render(frame{lines: []line{{r.title("Q"), span{text: " "}, r.failure("bad")}}}))

	got := out.String()
	assert.Contains(t, got, ThemeDefault.Title.ToANSI()+"Q"+Reset())
	assert.Contains(t, got, ThemeDefault.Error.ToANSI()+"bad"+Reset())
	assert.Contains(t, got, Reset()+" "+ThemeDefault.Error.ToANSI())
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRendererWriteError(t *testing.T) {
	t.Parallel()

	r := newRenderer(errWriter{}, ThemeDefault, func() int { return 80 })
	assert.Error(t, r.render(frame{lines: []line{plain("x")}}))
	assert.Error(t, r.finish(frame{lines: []line{plain("x")}}))
}

func TestLineWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, line{}.width())
	assert.Equal(t, 8, plain("ab", "日本", "cd").width())
}
