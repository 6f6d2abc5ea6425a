package inquire

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/nao1215/inquire/internal/debug"
)

// Prompt is one question resolving to a typed value. TextPrompt,
// ConfirmPrompt, SelectPrompt and MultiSelectPrompt all implement it.
type Prompt[T any] interface {
	Run(ctx context.Context, c *Console) (T, error)
}

// Step is one named entry of a Sequence.
type Step struct {
	Name string
	Run  func(ctx context.Context, c *Console) (any, error)
}

var (
	_ Prompt[string]   = TextPrompt[string]{}
	_ Prompt[bool]     = ConfirmPrompt{}
	_ Prompt[string]   = SelectPrompt{}
	_ Prompt[[]string] = MultiSelectPrompt{}
)

// Bind turns a typed prompt's Run method into a Step.
//
//	inquire.Bind("age", inquire.TextPrompt[int]{Title: "Age?", Parse: inquire.ParseInt}.Run)
func Bind[T any](name string, run func(ctx context.Context, c *Console) (T, error)) Step {
	return Step{
		Name: name,
		Run: func(ctx context.Context, c *Console) (any, error) {
			return run(ctx, c)
		},
	}
}

// SequenceState is where a sequence stopped.
type SequenceState int

// Sequence states. Running is only observed from within a step.
const (
	StateRunning SequenceState = iota
	StateCancelled
	StateCompleted
)

func (s SequenceState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateCancelled:
		return "cancelled"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("SequenceState(%d)", int(s))
	}
}

// Answers maps step names to resolved values. A step has no value when the
// sequence ended before it resolved.
type Answers struct {
	names  []string
	values map[string]any
	state  SequenceState
	index  int
}

// Get returns the value resolved for the named step.
func (a Answers) Get(name string) (any, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Names returns every step name, resolved or not, in sequence order.
func (a Answers) Names() []string { return slices.Clone(a.names) }

// Len returns the number of resolved steps.
func (a Answers) Len() int { return len(a.values) }

// State reports how the sequence ended.
func (a Answers) State() SequenceState { return a.state }

// Cancelled reports whether the user or the context stopped the sequence.
func (a Answers) Cancelled() bool { return a.state == StateCancelled }

// Index returns the step the sequence was on when it stopped, or the number
// of steps once completed.
func (a Answers) Index() int { return a.index }

// Lookup returns the named value as T.
func Lookup[T any](a Answers, name string) (T, bool) {
	v, ok := a.values[name]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Sequence runs steps one after another on the same console.
//
// Example:
//
//	answers, err := inquire.Sequence{
//		Steps: []inquire.Step{
//			inquire.Bind("name", inquire.TextPrompt[string]{Title: "What's your name?"}.Run),
//			inquire.Bind("age", inquire.TextPrompt[int]{Title: "How old are you?", Parse: inquire.ParseInt}.Run),
//		},
//	}.Run(ctx, console)
type Sequence struct {
	Steps []Step
	// Before, when set, runs ahead of every step. Use it to print headings.
	Before func(c *Console, index int, step Step)
}

// Run executes the steps in order and returns what was answered.
//
// Cancellation is a normal way out: when the user presses Ctrl+C or ctx is
// cancelled, Run stops, leaves the remaining steps unanswered and returns the
// partial answers with a nil error. Any other failure also stops the sequence
// and is returned with the partial answers. On a non-interactive console
// nothing runs and ErrNotInteractive is returned.
func (s Sequence) Run(ctx context.Context, c *Console) (Answers, error) {
	answers := Answers{
		names:  make([]string, 0, len(s.Steps)),
		values: make(map[string]any, len(s.Steps)),
	}
	for _, step := range s.Steps {
		debug.Assert(!slices.Contains(answers.names, step.Name), func() string {
			return fmt.Sprintf("duplicate step name %q", step.Name)
		})
		answers.names = append(answers.names, step.Name)
	}

	if !c.IsInteractive() {
		answers.state = StateCancelled
		return answers, ErrNotInteractive
	}

	for i, step := range s.Steps {
		answers.index = i
		if ctx.Err() != nil {
			answers.state = StateCancelled
			return answers, nil
		}
		if s.Before != nil {
			s.Before(c, i, step)
		}

		v, err := step.Run(ctx, c)
		if err != nil {
			answers.state = StateCancelled
			if errors.Is(err, ErrInterrupted) || ctx.Err() != nil {
				debug.Log("sequence cancelled", "step", step.Name, "index", i)
				return answers, nil
			}
			return answers, fmt.Errorf("step %q: %w", step.Name, err)
		}
		answers.values[step.Name] = v
	}

	answers.index = len(s.Steps)
	answers.state = StateCompleted
	return answers, nil
}
