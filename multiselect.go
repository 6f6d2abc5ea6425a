package inquire

import (
	"context"
	"strings"
)

const (
	defaultInstructionsText = "(Press <space> to toggle a choice, <enter> to accept)"
	defaultRequiredMessage  = "Select at least one option"
)

// MultiSelectPrompt asks for any number of choices.
//
// Space toggles the choice under the cursor and Enter accepts. The result
// lists the selected labels in the order of Choices, regardless of the order
// they were toggled in. Submitting with nothing selected returns an empty
// slice unless Required is set.
type MultiSelectPrompt struct {
	Title            string
	Choices          []Choice
	PageSize         int // rows shown at once, 10 when unset
	EnableSearch     bool
	Required         bool
	MoreChoicesText  string
	InstructionsText string
}

// Run shows the list and returns the selected labels on Enter.
func (p MultiSelectPrompt) Run(ctx context.Context, c *Console) ([]string, error) {
	if len(p.Choices) == 0 {
		return nil, ErrNoChoices
	}
	w := &multiSelectWidget{
		prompt: p,
		state:  newMultiSelectionState(p.Choices, p.PageSize),
		search: newTextEditState(NoMask()),
	}
	if err := c.run(ctx, w); err != nil {
		return nil, err
	}
	return w.answer, nil
}

type multiSelectWidget struct {
	prompt  MultiSelectPrompt
	state   *multiSelectionState
	search  *textEditState
	failure string
	done    bool
	answer  []string
}

func (w *multiSelectWidget) handle(ev KeyEvent) bool {
	switch ev.Kind {
	case KeyUp:
		w.state.moveCursor(-1)
	case KeyDown:
		w.state.moveCursor(1)
	case KeyHome:
		w.state.home()
	case KeyEnd:
		w.state.end()
	case KeyPageUp:
		w.state.pageUp()
	case KeyPageDown:
		w.state.pageDown()
	case KeyToggle:
		w.state.toggle()
		w.failure = ""
	case KeyCharacter:
		if w.prompt.EnableSearch {
			w.search.end()
			w.search.insert(ev.Rune)
			w.state.setFilter(w.search.text())
		}
	case KeyBackspace:
		if w.prompt.EnableSearch {
			w.search.end()
			w.search.backspace()
			w.state.setFilter(w.search.text())
		}
	case KeySubmit:
		result := w.state.result()
		if w.prompt.Required && len(result) == 0 {
			w.failure = defaultRequiredMessage
			return false
		}
		w.answer = result
		w.done = true
		return true
	}
	return false
}

func (w *multiSelectWidget) frame(r *renderer) frame {
	if w.done {
		return frame{lines: []line{{r.title(w.prompt.Title), span{text: " "}, r.answer(strings.Join(w.answer, ", "))}}, cursorCol: -1}
	}

	lines := []line{{r.title(w.prompt.Title)}}
	if w.prompt.EnableSearch {
		lines = append(lines, line{r.hint("Search: "), r.input(w.search.text())})
	}
	lines = append(lines, choiceRows(r, w.state.selectionState, func(index int, c Choice, active bool) line {
		prefix := "  "
		if active {
			prefix = "> "
		}
		if c.Group != "" {
			prefix += "  "
		}
		box := "[ ] "
		if w.state.isSelected(index) {
			box = "[x] "
		}
		l := line{span{text: prefix}}
		if active {
			l = append(l, r.selected(box))
		} else {
			l = append(l, r.choice(box))
		}
		return append(l, labelSpans(r, w.state.selectionState, c.Label, active)...)
	})...)

	if len(w.state.visible) == 0 {
		lines = append(lines, line{r.hint("  No choices match")})
	}
	if w.state.hasMore() {
		text := w.prompt.MoreChoicesText
		if text == "" {
			text = defaultMoreChoicesText
		}
		lines = append(lines, line{r.hint(text)})
	}
	instructions := w.prompt.InstructionsText
	if instructions == "" {
		instructions = defaultInstructionsText
	}
	lines = append(lines, line{r.hint(instructions)})
	if w.failure != "" {
		lines = append(lines, line{r.failure(w.failure)})
	}

	f := frame{lines: lines, cursorCol: -1}
	if w.prompt.EnableSearch {
		f.cursorLine = 1
		f.cursorCol = line{r.hint("Search: ")}.width() + w.search.renderedCursor()
	}
	return f
}
