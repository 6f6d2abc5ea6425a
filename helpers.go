package inquire

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// splitMatch splits label around the first case-folded occurrence of filter,
// returning byte ranges of the original label so the match can be drawn in
// its own color. With no match, before is the whole label.
func splitMatch(label, filter string, folder cases.Caser) (before, match, after string) {
	if filter == "" {
		return label, "", ""
	}
	needle := folder.String(filter)
	for i := 0; i < len(label); {
		if strings.HasPrefix(folder.String(label[i:]), needle) {
			for j := i; j < len(label); {
				_, size := utf8.DecodeRuneInString(label[j:])
				j += size
				if strings.HasPrefix(folder.String(label[i:j]), needle) {
					return label[:i], label[i:j], label[j:]
				}
			}
		}
		_, size := utf8.DecodeRuneInString(label[i:])
		i += size
	}
	return label, "", ""
}

// choiceRows renders the visible page of a selection, inserting a header
// row whenever the group changes. Headers are never cursor targets.
func choiceRows(r *renderer, s *selectionState, row func(index int, c Choice, active bool) line) []line {
	var lines []line
	current, _, _ := s.current()
	group := ""
	for i, index := range s.window() {
		c := s.choices[index]
		if c.Group != group || (i == 0 && c.Group != "") {
			if c.Group != "" {
				lines = append(lines, line{r.group(c.Group)})
			}
			group = c.Group
		}
		lines = append(lines, row(index, c, index == current))
	}
	return lines
}

// labelSpans draws a label with the filter match highlighted.
func labelSpans(r *renderer, s *selectionState, label string, active bool) []span {
	style := r.choice
	if active {
		style = r.selected
	}
	before, match, after := splitMatch(label, s.filter, s.folder)
	spans := []span{style(before)}
	if match != "" {
		spans = append(spans, r.match(match), style(after))
	}
	return spans
}
