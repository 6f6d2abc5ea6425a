package inquire

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// span is a run of text drawn in one color. A nil color draws unstyled.
type span struct {
	text  string
	color *Color
}

type line []span

func (l line) width() int {
	w := 0
	for _, s := range l {
		w += runewidth.StringWidth(s.text)
	}
	return w
}

// frame is everything a prompt wants on screen for its current state.
// cursorCol < 0 hides the terminal cursor.
type frame struct {
	lines      []line
	cursorLine int
	cursorCol  int
}

// renderer redraws a prompt's block of lines in place.
//
// Each render moves back to the top of the previous block, clears to the end
// of the screen and writes the new block, so a frame that shrinks leaves no
// stale rows behind. Lines are truncated to the terminal width; a wrapped line
// would break the row bookkeeping.
type renderer struct {
	output      io.Writer
	colorScheme *ColorScheme
	width       func() int
	lastLines   int // Lines drawn by the previous render
	cursorLine  int // Row of the block the terminal cursor was left on
}

func newRenderer(output io.Writer, colorScheme *ColorScheme, width func() int) *renderer {
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
		width:       width,
	}
}

// render draws f over the previous frame.
func (r *renderer) render(f frame) error {
	var b strings.Builder

	// Back to the top of the block
	if r.cursorLine > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", r.cursorLine)
	}
	b.WriteString("\r\x1b[J")

	width := r.width()
	for i, l := range f.lines {
		if i > 0 {
			b.WriteString("\r\n")
		}
		r.writeLine(&b, l, width)
	}

	// Park the cursor
	last := max(len(f.lines)-1, 0)
	cursorLine := min(max(f.cursorLine, 0), last)
	if up := last - cursorLine; up > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", up)
	}
	b.WriteString("\r")
	if f.cursorCol > 0 {
		fmt.Fprintf(&b, "\x1b[%dC", min(f.cursorCol, max(width-1, 0)))
	}
	if f.cursorCol < 0 {
		b.WriteString("\x1b[?25l")
	} else {
		b.WriteString("\x1b[?25h")
	}

	if _, err := io.WriteString(r.output, b.String()); err != nil {
		return err
	}
	r.lastLines = len(f.lines)
	r.cursorLine = cursorLine
	return nil
}

// finish draws f one last time and leaves the terminal cursor on a fresh line
// below it, ready for whatever the caller prints next.
func (r *renderer) finish(f frame) error {
	if err := r.render(f); err != nil {
		return err
	}
	var b strings.Builder
	if down := r.lastLines - 1 - r.cursorLine; down > 0 {
		fmt.Fprintf(&b, "\x1b[%dB", down)
	}
	b.WriteString("\r\n\x1b[?25h")
	r.lastLines = 0
	r.cursorLine = 0
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *renderer) writeLine(b *strings.Builder, l line, width int) {
	remaining := width
	for _, s := range l {
		if remaining <= 0 {
			break
		}
		text := s.text
		if w := runewidth.StringWidth(text); w > remaining {
			text = runewidth.Truncate(text, remaining, "")
		}
		remaining -= runewidth.StringWidth(text)
		if s.color != nil {
			b.WriteString(s.color.ToANSI())
			b.WriteString(text)
			b.WriteString(Reset())
		} else {
			b.WriteString(text)
		}
	}
}

// Span helpers bound to the renderer's color scheme

func (r *renderer) title(text string) span {
	return span{text: text, color: &r.colorScheme.Title}
}

func (r *renderer) input(text string) span {
	return span{text: text, color: &r.colorScheme.Input}
}

func (r *renderer) answer(text string) span {
	return span{text: text, color: &r.colorScheme.Answer}
}

func (r *renderer) choice(text string) span {
	return span{text: text, color: &r.colorScheme.Choice}
}

func (r *renderer) selected(text string) span {
	return span{text: text, color: &r.colorScheme.Selected}
}

func (r *renderer) group(text string) span {
	return span{text: text, color: &r.colorScheme.Group}
}

func (r *renderer) match(text string) span {
	return span{text: text, color: &r.colorScheme.Match}
}

func (r *renderer) hint(text string) span {
	return span{text: text, color: &r.colorScheme.Hint}
}

func (r *renderer) failure(text string) span {
	return span{text: text, color: &r.colorScheme.Error}
}

func (r *renderer) rule(text string) span {
	return span{text: text, color: &r.colorScheme.Rule}
}
