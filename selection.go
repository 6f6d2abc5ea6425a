package inquire

import (
	"slices"
	"strings"

	"github.com/nao1215/inquire/internal/debug"
	"golang.org/x/text/cases"
)

// Choice is one selectable row. Group names a section header; choices keep
// their position in the flat list whatever their group.
type Choice struct {
	Label string
	Group string
}

// Choices builds ungrouped choices from labels.
func Choices(labels ...string) []Choice {
	out := make([]Choice, len(labels))
	for i, label := range labels {
		out[i] = Choice{Label: label}
	}
	return out
}

// ChoiceGroup builds choices that share a group header.
func ChoiceGroup(group string, labels ...string) []Choice {
	out := make([]Choice, len(labels))
	for i, label := range labels {
		out[i] = Choice{Label: label, Group: group}
	}
	return out
}

const defaultPageSize = 10

// selectionState is a cursor over the choices that pass the filter.
//
// visible holds indices into choices, in list order. cursor indexes visible
// and offset is the first row of the page window. Movement clamps at both
// ends; it never wraps.
type selectionState struct {
	choices  []Choice
	visible  []int
	cursor   int
	offset   int
	filter   string
	pageSize int
	folder   cases.Caser
}

func newSelectionState(choices []Choice, pageSize int) *selectionState {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	s := &selectionState{
		choices:  choices,
		pageSize: pageSize,
		folder:   cases.Fold(),
	}
	s.visible = s.matching("")
	return s
}

func (s *selectionState) matching(filter string) []int {
	out := make([]int, 0, len(s.choices))
	needle := s.folder.String(filter)
	for i, c := range s.choices {
		if needle == "" || strings.Contains(s.folder.String(c.Label), needle) {
			out = append(out, i)
		}
	}
	return out
}

func (s *selectionState) moveCursor(delta int) {
	if len(s.visible) == 0 {
		return
	}
	s.cursor = min(max(s.cursor+delta, 0), len(s.visible)-1)
	s.adjustWindow()
}

func (s *selectionState) home() { s.moveCursor(-len(s.visible)) }

func (s *selectionState) end() { s.moveCursor(len(s.visible)) }

func (s *selectionState) pageUp() { s.moveCursor(-s.pageSize) }

func (s *selectionState) pageDown() { s.moveCursor(s.pageSize) }

// setFilter narrows the visible choices. The cursor stays on the current
// choice if it still matches and moves to the first match otherwise.
func (s *selectionState) setFilter(filter string) {
	current, _, hasCurrent := s.current()
	s.filter = filter
	s.visible = s.matching(filter)
	s.cursor = 0
	if hasCurrent {
		if pos := slices.Index(s.visible, current); pos >= 0 {
			s.cursor = pos
		}
	}
	s.offset = 0
	s.adjustWindow()
}

// adjustWindow shifts the page window as little as possible so that it
// contains the cursor.
func (s *selectionState) adjustWindow() {
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+s.pageSize {
		s.offset = s.cursor - s.pageSize + 1
	}
	s.offset = min(max(s.offset, 0), max(len(s.visible)-s.pageSize, 0))
	s.check()
}

// current returns the choice index under the cursor.
func (s *selectionState) current() (index int, choice Choice, ok bool) {
	if len(s.visible) == 0 {
		return 0, Choice{}, false
	}
	index = s.visible[s.cursor]
	return index, s.choices[index], true
}

// window returns the choice indices on the visible page.
func (s *selectionState) window() []int {
	end := min(s.offset+s.pageSize, len(s.visible))
	return s.visible[s.offset:end]
}

// hasMore reports whether some filtered choices are off the page.
func (s *selectionState) hasMore() bool {
	return len(s.visible) > s.pageSize
}

func (s *selectionState) check() {
	debug.Assert(len(s.visible) == 0 || (s.cursor >= 0 && s.cursor < len(s.visible)), "selection cursor out of range")
	debug.Assert(s.cursor >= s.offset && (len(s.visible) == 0 || s.cursor < s.offset+s.pageSize), "selection cursor outside window")
}

// multiSelectionState adds a set of toggled choices. The set holds indices
// into the unfiltered choices, so selections survive filter changes.
type multiSelectionState struct {
	*selectionState
	selected map[int]bool
}

func newMultiSelectionState(choices []Choice, pageSize int) *multiSelectionState {
	return &multiSelectionState{
		selectionState: newSelectionState(choices, pageSize),
		selected:       make(map[int]bool),
	}
}

func (s *multiSelectionState) toggle() {
	index, _, ok := s.current()
	if !ok {
		return
	}
	debug.Assert(index >= 0 && index < len(s.choices), "toggled index out of range")
	if s.selected[index] {
		delete(s.selected, index)
	} else {
		s.selected[index] = true
	}
}

func (s *multiSelectionState) isSelected(index int) bool { return s.selected[index] }

// result returns the selected labels in list order, not toggle order.
func (s *multiSelectionState) result() []string {
	out := make([]string, 0, len(s.selected))
	for i, c := range s.choices {
		if s.selected[i] {
			out = append(out, c.Label)
		}
	}
	return out
}
