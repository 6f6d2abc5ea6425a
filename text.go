package inquire

import (
	"context"
	"fmt"
	"strings"
)

// TextPrompt asks for a line of text and converts it to T.
//
// The struct is the prompt's whole configuration; Run takes it by value and
// never changes it, so one TextPrompt can be asked any number of times.
//
// Example:
//
//	age, err := inquire.TextPrompt[int]{
//		Title: "How old are you?",
//		Parse: inquire.ParseInt,
//		Validate: func(age int) inquire.ValidationResult {
//			if age <= 0 {
//				return inquire.ValidationFailure("You must at least be 1 years old")
//			}
//			return inquire.ValidationSuccess()
//		},
//	}.Run(ctx, console)
type TextPrompt[T any] struct {
	Title                  string
	Parse                  Parser[T]    // nil only for string prompts
	TypeName               string       // shown in "Not a valid <type>"; defaults to the Go type
	Validate               Validator[T] // runs only after Parse succeeded
	ValidationErrorMessage string       // replaces the parse failure message
	Choices                []string     // when set the value must be one of these
	InvalidChoiceMessage   string
	HideChoices            bool
	Default                *T // returned on empty input
	HideDefault            bool
	AllowEmpty             bool // empty input resolves to the zero value
	Mask                   Mask // secret entry
}

// Ptr returns a pointer to v, for TextPrompt.Default.
func Ptr[T any](v T) *T { return &v }

// Run shows the prompt until the input is accepted.
//
// Invalid input shows the failure message below the prompt and keeps the
// typed text for correction. Ctrl+C or a cancelled context returns
// ErrInterrupted without running validation.
func (p TextPrompt[T]) Run(ctx context.Context, c *Console) (T, error) {
	w := &textWidget[T]{
		title: p.Title,
		hints: p.hints(),
		pipeline: Pipeline[T]{
			Parse:                p.Parse,
			TypeName:             p.TypeName,
			ParseErrorMessage:    p.ValidationErrorMessage,
			Choices:              p.Choices,
			InvalidChoiceMessage: p.InvalidChoiceMessage,
			Validate:             p.Validate,
		},
		fallback:   p.Default,
		allowEmpty: p.AllowEmpty,
		format:     func(v T) string { return fmt.Sprint(v) },
		state:      newTextEditState(p.Mask),
	}
	if err := c.run(ctx, w); err != nil {
		var zero T
		return zero, err
	}
	return w.value, nil
}

func (p TextPrompt[T]) hints() []string {
	var hints []string
	if len(p.Choices) > 0 && !p.HideChoices {
		hints = append(hints, "["+strings.Join(p.Choices, "/")+"]")
	}
	if p.Default != nil && !p.HideDefault {
		hints = append(hints, "("+p.Mask.apply([]rune(fmt.Sprint(*p.Default)))+")")
	}
	return hints
}

// textWidget is the key loop state shared by text, secret and confirmation prompts.
type textWidget[T any] struct {
	title      string
	hints      []string
	pipeline   Pipeline[T]
	fallback   *T
	allowEmpty bool
	accept     func(candidate string) bool // rejects keystrokes that cannot lead to valid input
	format     func(T) string              // echoes a default answer
	state      *textEditState

	failure string
	done    bool
	value   T
	answer  string
}

func (w *textWidget[T]) handle(ev KeyEvent) bool {
	switch ev.Kind {
	case KeyCharacter, KeyToggle:
		if w.accept != nil {
			candidate := string(w.state.buffer[:w.state.cursor]) + string(ev.Rune) + string(w.state.buffer[w.state.cursor:])
			if !w.accept(candidate) {
				return false
			}
		}
		w.state.insert(ev.Rune)
	case KeyBackspace:
		w.state.backspace()
	case KeyDelete:
		w.state.delete()
	case KeyLeft:
		w.state.moveCursor(-1)
	case KeyRight:
		w.state.moveCursor(1)
	case KeyHome:
		w.state.home()
	case KeyEnd:
		w.state.end()
	case KeySubmit:
		return w.submit()
	}
	return false
}

func (w *textWidget[T]) submit() bool {
	raw := w.state.text()
	if strings.TrimSpace(raw) == "" {
		switch {
		case w.fallback != nil:
			w.resolve(*w.fallback, w.state.mask.apply([]rune(w.format(*w.fallback))))
			return true
		case w.allowEmpty:
			var zero T
			w.resolve(zero, "")
			return true
		default:
			return false
		}
	}

	outcome := w.pipeline.Run(raw)
	if !outcome.OK() {
		w.failure = outcome.Failure.Message
		return false
	}
	w.resolve(outcome.Value, w.state.mask.apply([]rune(w.format(outcome.Value))))
	return true
}

func (w *textWidget[T]) resolve(value T, answer string) {
	w.value = value
	w.answer = answer
	w.failure = ""
	w.done = true
}

func (w *textWidget[T]) frame(r *renderer) frame {
	head := line{r.title(w.title)}
	for _, h := range w.hints {
		head = append(head, span{text: " "}, r.hint(h))
	}
	head = append(head, span{text: " "})

	if w.done {
		head = append(head, r.answer(w.answer))
		return frame{lines: []line{head}, cursorCol: -1}
	}

	col := head.width() + w.state.renderedCursor()
	head = append(head, r.input(w.state.rendered()))
	lines := []line{head}
	if w.failure != "" {
		lines = append(lines, line{r.failure(w.failure)})
	}
	return frame{lines: lines, cursorLine: 0, cursorCol: col}
}
