package inquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode"
)

// KeyKind classifies one logical key press.
type KeyKind int

// Key kinds produced by the key reader. KeyNone marks input with no meaning
// to any prompt (unbound control bytes, unknown escape sequences).
const (
	KeyNone KeyKind = iota
	KeyCharacter
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyToggle
	KeySubmit
	KeyCancel
)

var keyKindNames = [...]string{
	KeyNone:      "none",
	KeyCharacter: "character",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyToggle:    "toggle",
	KeySubmit:    "submit",
	KeyCancel:    "cancel",
}

func (k KeyKind) String() string {
	if k < 0 || int(k) >= len(keyKindNames) {
		return fmt.Sprintf("KeyKind(%d)", int(k))
	}
	return keyKindNames[k]
}

// KeyEvent is a single decoded key press. Rune is set for KeyCharacter and
// for KeyToggle, so text prompts can treat the toggle key as a space.
type KeyEvent struct {
	Kind KeyKind
	Rune rune
}

// KeyMap holds the key binding configuration
type KeyMap struct {
	bindings  map[rune]KeyKind
	sequences map[string]KeyKind
}

// NewDefaultKeyMap creates the default key bindings.
//
// Default key bindings:
//   - Enter/Return: Submit
//   - Ctrl+C: Cancel
//   - Space: Toggle (inserts a space in text prompts)
//   - Backspace / Delete: Delete backwards / forwards
//   - Ctrl+A / Home, Ctrl+E / End: Line or list start and end
//   - Arrow keys: Move the cursor
//   - Page Up / Page Down: Move one page in selections
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]KeyKind),
		sequences: make(map[string]KeyKind),
	}

	km.bindings['\r'] = KeySubmit
	km.bindings['\n'] = KeySubmit
	km.bindings['\x03'] = KeyCancel // Ctrl+C
	km.bindings['\x01'] = KeyHome   // Ctrl+A
	km.bindings['\x05'] = KeyEnd    // Ctrl+E
	km.bindings['\x7f'] = KeyBackspace
	km.bindings['\b'] = KeyBackspace
	km.bindings[' '] = KeyToggle

	// Escape sequences, without the leading ESC
	km.sequences["[A"] = KeyUp
	km.sequences["[B"] = KeyDown
	km.sequences["[C"] = KeyRight
	km.sequences["[D"] = KeyLeft
	km.sequences["OA"] = KeyUp
	km.sequences["OB"] = KeyDown
	km.sequences["OC"] = KeyRight
	km.sequences["OD"] = KeyLeft
	km.sequences["[H"] = KeyHome
	km.sequences["[F"] = KeyEnd
	km.sequences["OH"] = KeyHome
	km.sequences["OF"] = KeyEnd
	km.sequences["[1~"] = KeyHome
	km.sequences["[4~"] = KeyEnd
	km.sequences["[3~"] = KeyDelete
	km.sequences["[5~"] = KeyPageUp
	km.sequences["[6~"] = KeyPageDown

	return km
}

// Bind adds or updates a key binding for a single character.
//
// Example:
//
//	keyMap := inquire.NewDefaultKeyMap()
//	// Use Tab to toggle choices as well as Space
//	keyMap.Bind('\t', inquire.KeyToggle)
func (km *KeyMap) Bind(key rune, kind KeyKind) {
	km.bindings[key] = kind
}

// BindSequence adds or updates an escape sequence binding.
// The sequence should not include the initial ESC character.
//
// Example:
//
//	keyMap := inquire.NewDefaultKeyMap()
//	// Ctrl+Up jumps to the first choice
//	keyMap.BindSequence("[1;5A", inquire.KeyHome)
func (km *KeyMap) BindSequence(seq string, kind KeyKind) {
	km.sequences[seq] = kind
}

func (km *KeyMap) kind(key rune) KeyKind {
	if km == nil || km.bindings == nil {
		return KeyNone
	}
	return km.bindings[key]
}

func (km *KeyMap) sequenceKind(seq string) KeyKind {
	if km == nil || km.sequences == nil {
		return KeyNone
	}
	return km.sequences[seq]
}

// keyReader turns raw runes from the terminal into key events, one logical
// key per call. The context is the cancellation signal: it is checked before
// the read starts and again as soon as the read returns, and a cancelled
// context always yields KeyCancel.
type keyReader struct {
	terminal terminalInterface
	keyMap   *KeyMap

	// pending holds a rune read after a lone ESC that belongs to the next key.
	pending    rune
	hasPending bool
}

func (kr *keyReader) readRune() (rune, error) {
	if kr.hasPending {
		kr.hasPending = false
		return kr.pending, nil
	}
	r, _, err := kr.terminal.ReadRune()
	return r, err
}

func (kr *keyReader) next(ctx context.Context) (KeyEvent, error) {
	if ctx.Err() != nil {
		return KeyEvent{Kind: KeyCancel}, nil
	}

	r, err := kr.readRune()
	if ctx.Err() != nil {
		return KeyEvent{Kind: KeyCancel}, nil
	}
	if err != nil {
		return KeyEvent{}, readError(err)
	}

	if r == '\x1b' {
		seq, err := kr.readEscapeSequence()
		if ctx.Err() != nil {
			return KeyEvent{Kind: KeyCancel}, nil
		}
		if err != nil {
			return KeyEvent{}, readError(err)
		}
		return KeyEvent{Kind: kr.keyMap.sequenceKind(seq)}, nil
	}

	if kind := kr.keyMap.kind(r); kind != KeyNone {
		return KeyEvent{Kind: kind, Rune: r}, nil
	}
	if unicode.IsPrint(r) {
		return KeyEvent{Kind: KeyCharacter, Rune: r}, nil
	}
	return KeyEvent{Kind: KeyNone, Rune: r}, nil
}

// readEscapeSequence reads the rest of a sequence after ESC. CSI sequences
// ("[" ... final byte) and SS3 sequences ("O" + one rune) are recognised.
// Any other rune means ESC was pressed on its own: the rune is kept for the
// next call and the empty sequence resolves to KeyNone.
func (kr *keyReader) readEscapeSequence() (string, error) {
	first, err := kr.readRune()
	if err != nil {
		return "", err
	}
	switch first {
	case 'O':
		r, _, err := kr.terminal.ReadRune()
		if err != nil {
			return "", err
		}
		return string([]rune{first, r}), nil
	case '[':
		seq := make([]rune, 1, 8)
		seq[0] = first
		for range 8 { // Limit to prevent runaway reads on garbage input
			r, _, err := kr.terminal.ReadRune()
			if err != nil {
				return "", err
			}
			seq = append(seq, r)
			if r >= 0x40 && r <= 0x7e {
				break
			}
		}
		return string(seq), nil
	default:
		kr.pending, kr.hasPending = first, true
		return "", nil
	}
}

func readError(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrEOF
	}
	return fmt.Errorf("failed to read input: %w", err)
}
