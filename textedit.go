package inquire

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nao1215/inquire/internal/debug"
)

type maskMode int

const (
	maskNone maskMode = iota
	maskChar
	maskSilent
)

// Mask decides how typed text is echoed. The zero value shows plain text.
type Mask struct {
	mode maskMode
	char rune
}

// NoMask echoes input as typed.
func NoMask() Mask { return Mask{} }

// MaskWith echoes every typed character as r.
func MaskWith(r rune) Mask { return Mask{mode: maskChar, char: r} }

// DefaultMask echoes every typed character as '*'.
func DefaultMask() Mask { return MaskWith('*') }

// SilentMask echoes nothing at all while typing.
func SilentMask() Mask { return Mask{mode: maskSilent} }

// IsSecret reports whether input is hidden in any way.
func (m Mask) IsSecret() bool { return m.mode != maskNone }

func (m Mask) apply(text []rune) string {
	switch m.mode {
	case maskChar:
		return strings.Repeat(string(m.char), len(text))
	case maskSilent:
		return ""
	default:
		return string(text)
	}
}

// textEditState is a single-line edit buffer with a cursor.
// The cursor is a rune offset in [0, len(buffer)].
type textEditState struct {
	buffer []rune
	cursor int
	mask   Mask
}

func newTextEditState(mask Mask) *textEditState {
	return &textEditState{buffer: []rune{}, mask: mask}
}

func (s *textEditState) insert(r rune) {
	s.buffer = append(s.buffer[:s.cursor], append([]rune{r}, s.buffer[s.cursor:]...)...)
	s.cursor++
	s.check()
}

func (s *textEditState) backspace() {
	if s.cursor == 0 {
		return
	}
	s.buffer = append(s.buffer[:s.cursor-1], s.buffer[s.cursor:]...)
	s.cursor--
	s.check()
}

func (s *textEditState) delete() {
	if s.cursor >= len(s.buffer) {
		return
	}
	s.buffer = append(s.buffer[:s.cursor], s.buffer[s.cursor+1:]...)
	s.check()
}

// moveCursor moves by delta runes, clamped to the buffer.
func (s *textEditState) moveCursor(delta int) {
	s.cursor = min(max(s.cursor+delta, 0), len(s.buffer))
}

func (s *textEditState) home() { s.cursor = 0 }

func (s *textEditState) end() { s.cursor = len(s.buffer) }

func (s *textEditState) text() string { return string(s.buffer) }

func (s *textEditState) rendered() string { return s.mask.apply(s.buffer) }

// renderedCursor returns the display column of the cursor within rendered().
func (s *textEditState) renderedCursor() int {
	switch s.mask.mode {
	case maskChar:
		return s.cursor * runewidth.RuneWidth(s.mask.char)
	case maskSilent:
		return 0
	default:
		return runewidth.StringWidth(string(s.buffer[:s.cursor]))
	}
}

func (s *textEditState) check() {
	debug.Assert(s.cursor >= 0 && s.cursor <= len(s.buffer), func() string {
		return "text cursor out of range"
	})
}
