package inquire

import (
	"context"
	"fmt"
)

const defaultMoreChoicesText = "(Move up and down to reveal more choices)"

// SelectPrompt asks for exactly one of a list of choices.
//
// With EnableSearch, typed characters go to a filter that narrows the list
// to labels containing it, ignoring case.
type SelectPrompt struct {
	Title           string
	Choices         []Choice
	PageSize        int // rows shown at once, 10 when unset
	EnableSearch    bool
	MoreChoicesText string
}

// Run shows the list and returns the label under the cursor on Enter.
func (p SelectPrompt) Run(ctx context.Context, c *Console) (string, error) {
	if len(p.Choices) == 0 {
		return "", ErrNoChoices
	}
	w := &selectWidget{
		prompt: p,
		state:  newSelectionState(p.Choices, p.PageSize),
		search: newTextEditState(NoMask()),
	}
	if err := c.run(ctx, w); err != nil {
		return "", err
	}
	return w.answer, nil
}

type selectWidget struct {
	prompt SelectPrompt
	state  *selectionState
	search *textEditState
	done   bool
	answer string
}

func (w *selectWidget) handle(ev KeyEvent) bool {
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
	case KeyCharacter, KeyToggle:
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
		_, choice, ok := w.state.current()
		if !ok {
			return false
		}
		w.answer = choice.Label
		w.done = true
		return true
	}
	return false
}

func (w *selectWidget) frame(r *renderer) frame {
	if w.done {
		return frame{lines: []line{{r.title(w.prompt.Title), span{text: " "}, r.answer(w.answer)}}, cursorCol: -1}
	}

	lines := []line{{r.title(w.prompt.Title)}}
	if w.prompt.EnableSearch {
		lines = append(lines, line{r.hint("Search: "), r.input(w.search.text())})
	}
	lines = append(lines, choiceRows(r, w.state, func(_ int, c Choice, active bool) line {
		prefix := "  "
		if active {
			prefix = "> "
		}
		if c.Group != "" {
			prefix += "  "
		}
		return append(line{span{text: prefix}}, labelSpans(r, w.state, c.Label, active)...)
	})...)

	if len(w.state.visible) == 0 {
		lines = append(lines, line{r.hint(fmt.Sprintf("  No choices match %q", w.state.filter))})
	}
	if w.state.hasMore() {
		text := w.prompt.MoreChoicesText
		if text == "" {
			text = defaultMoreChoicesText
		}
		lines = append(lines, line{r.hint(text)})
	}

	f := frame{lines: lines, cursorCol: -1}
	if w.prompt.EnableSearch {
		f.cursorLine = 1
		f.cursorCol = line{r.hint("Search: ")}.width() + w.search.renderedCursor()
	}
	return f
}
