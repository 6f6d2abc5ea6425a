package inquire

import (
	"context"
	"errors"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// ConfirmPrompt asks a yes/no question.
//
// Only the configured tokens can be typed, compared without regard to case.
// Submitting an empty line answers Default.
type ConfirmPrompt struct {
	Title                string
	Default              bool
	YesTokens            []string // defaults to "y", "yes"
	NoTokens             []string // defaults to "n", "no"
	HideChoices          bool
	HideDefault          bool
	InvalidChoiceMessage string
}

var errUnknownToken = errors.New("unknown confirmation token")

// Run shows the prompt until it is answered.
func (p ConfirmPrompt) Run(ctx context.Context, c *Console) (bool, error) {
	folder := cases.Fold()
	fold := func(s []string) []string {
		out := make([]string, len(s))
		for i, t := range s {
			out[i] = folder.String(t)
		}
		return out
	}

	yes := p.YesTokens
	if len(yes) == 0 {
		yes = []string{"y", "yes"}
	}
	no := p.NoTokens
	if len(no) == 0 {
		no = []string{"n", "no"}
	}
	foldedYes, foldedNo := fold(yes), fold(no)
	tokens := slices.Concat(foldedYes, foldedNo)

	message := p.InvalidChoiceMessage
	if message == "" {
		message = defaultInvalidChoiceMessage
	}

	var hints []string
	if !p.HideChoices {
		hints = append(hints, "["+yes[0]+"/"+no[0]+"]")
	}
	token := func(v bool) string {
		if v {
			return yes[0]
		}
		return no[0]
	}
	if !p.HideDefault {
		hints = append(hints, "("+token(p.Default)+")")
	}

	w := &textWidget[bool]{
		title: p.Title,
		hints: hints,
		pipeline: Pipeline[bool]{
			Parse: func(raw string) (bool, error) {
				folded := folder.String(strings.TrimSpace(raw))
				switch {
				case slices.Contains(foldedYes, folded):
					return true, nil
				case slices.Contains(foldedNo, folded):
					return false, nil
				}
				return false, errUnknownToken
			},
			ParseErrorMessage: message,
		},
		fallback: Ptr(p.Default),
		format:   token,
		accept: func(candidate string) bool {
			folded := folder.String(candidate)
			return slices.ContainsFunc(tokens, func(t string) bool {
				return strings.HasPrefix(t, folded)
			})
		},
		state: newTextEditState(NoMask()),
	}
	if err := c.run(ctx, w); err != nil {
		return false, err
	}
	return w.value, nil
}
