// Package inquire asks users questions in the terminal and returns typed answers.
//
// Every question is a small struct describing the prompt. Running it draws the
// question, reads keys until the answer is accepted and returns the value. The
// struct is never modified, so the same prompt can be asked again.
//
// Key Features:
//
//   - Text prompts parsed into any type, with defaults and choice lists
//   - Secret entry with a mask character or no echo at all
//   - Yes/no confirmation with configurable tokens
//   - Single and multiple selection with paging, groups and search
//   - Validation that re-asks with a message instead of failing
//   - Sequences of prompts that stop cleanly on Ctrl+C
//   - Context cancellation, checked around every key read
//
// Quick Start:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		"github.com/nao1215/inquire"
//	)
//
//	func main() {
//		c, err := inquire.NewConsole()
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer c.Close()
//
//		name, err := inquire.TextPrompt[string]{Title: "What's your name?"}.Run(context.Background(), c)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("Hello, %s!\n", name)
//	}
//
// Typed Input and Validation:
//
// Input goes through a fixed pipeline: Parse, then the Choices check, then
// Validate. A failing stage shows its message below the prompt and the typed
// text stays in place for correction. Nothing is returned until input passes.
//
//	age, err := inquire.TextPrompt[int]{
//		Title:    "How old are you?",
//		Parse:    inquire.ParseInt,
//		TypeName: "age",
//		Validate: inquire.InRange(1, 122, "That's not a valid age"),
//	}.Run(ctx, c)
//
// Secrets:
//
//	password, err := inquire.TextPrompt[string]{
//		Title: "Enter password:",
//		Mask:  inquire.DefaultMask(),
//	}.Run(ctx, c)
//
// SilentMask echoes nothing, MaskWith echoes any rune you choose.
//
// Selection:
//
//	fruits, err := inquire.MultiSelectPrompt{
//		Title: "What are your favorite fruits?",
//		Choices: slices.Concat(
//			inquire.Choices("Apple", "Banana"),
//			inquire.ChoiceGroup("Berries", "Blackcurrant", "Blueberry"),
//		),
//		Required: true,
//	}.Run(ctx, c)
//
// Multi-selection returns labels in list order, whatever order they were
// toggled in. Set EnableSearch to let typed characters filter the list.
//
// Sequences:
//
// A Sequence runs named steps in order. Ctrl+C or a cancelled context ends it
// early without an error; the answers collected so far are kept and the rest
// are absent.
//
//	answers, err := inquire.Sequence{
//		Steps: []inquire.Step{
//			inquire.Bind("name", inquire.TextPrompt[string]{Title: "What's your name?"}.Run),
//			inquire.Bind("sure", inquire.ConfirmPrompt{Title: "Sure?"}.Run),
//		},
//	}.Run(ctx, c)
//	if answers.Cancelled() {
//		fmt.Println("Ok... :(")
//	}
//	name, ok := inquire.Lookup[string](answers, "name")
//
// Key Bindings:
//
//   - Enter: Submit the answer
//   - Ctrl+C: Cancel and return ErrInterrupted
//   - Arrow keys: Move the text cursor or the selection cursor
//   - Ctrl+A / Home, Ctrl+E / End: Start and end of the line or list
//   - Page Up / Page Down: Move one page in selections
//   - Space: Toggle a choice in multi-selection
//   - Backspace / Delete: Delete backwards / forwards
//
// Bindings can be changed with a custom KeyMap passed to WithKeyMap.
//
// Error Handling:
//
//   - inquire.ErrInterrupted: Ctrl+C, or the context was cancelled
//   - inquire.ErrEOF: the input stream ended
//   - inquire.ErrNotInteractive: stdin or stdout is not a terminal
//   - inquire.ErrNoChoices: a selection prompt has nothing to select
//
// A context cancellation wraps both ErrInterrupted and the context's cause,
// so errors.Is works for either.
//
// Thread Safety:
//
// A Console runs one prompt at a time and must be used from a single
// goroutine. Cancelling its context from another goroutine is safe; a prompt
// blocked on a read notices the cancellation when that read returns.
//
// Debugging:
//
// Set INQUIRE_DEBUG_LOG to a file path to log every key and state check.
// Set INQUIRE_DEBUG_ASSERT=true to panic on a broken internal invariant.
package inquire
