package main

import (
	"strconv"

	"github.com/bndr/gotabulate"
)

const notAvailable = "N/A"

// answerSource is satisfied by inquire.Answers.
type answerSource interface {
	Get(name string) (any, bool)
}

// summaryRows lists every question with its answer. Questions the run never
// reached, or a fruit question without a pick, show as N/A. An optional color
// left empty shows as Unknown.
func summaryRows(answers answerSource) [][]string {
	text := func(name string) string {
		v, ok := answers.Get(name)
		s, isString := v.(string)
		if !ok || !isString || (name == "fruit" && s == "") {
			return notAvailable
		}
		return s
	}

	age := notAvailable
	if v, ok := answers.Get("age"); ok {
		if n, ok := v.(int); ok {
			age = strconv.Itoa(n)
		}
	}

	color := text("color")
	if v, ok := answers.Get("color"); ok && v == "" {
		color = "Unknown"
	}

	return [][]string{
		{"Name", text("name")},
		{"Favorite fruit", text("fruit")},
		{"Favorite sport", text("sport")},
		{"Age", age},
		{"Password", text("password")},
		{"Mask", text("mask")},
		{"Null Mask", text("nullmask")},
		{"Favorite color", color},
	}
}

func summary(answers answerSource) string {
	t := gotabulate.Create(summaryRows(answers))
	t.SetHeaders([]string{"Question", "Answer"})
	t.SetAlign("left")
	t.SetWrapStrings(true)
	t.SetMaxCellSize(40)
	return t.Render("grid")
}
