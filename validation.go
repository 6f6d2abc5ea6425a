package inquire

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/nao1215/inquire/internal/debug"
)

// ValidationResult is what a Validator returns: success, or a failure with a
// message shown to the user before the prompt asks again.
type ValidationResult struct {
	failed  bool
	message string
}

// ValidationSuccess accepts the value.
func ValidationSuccess() ValidationResult { return ValidationResult{} }

// ValidationFailure rejects the value with the given message.
func ValidationFailure(message string) ValidationResult {
	return ValidationResult{failed: true, message: message}
}

// Successful reports whether the value was accepted.
func (r ValidationResult) Successful() bool { return !r.failed }

// Message returns the failure message, empty on success.
func (r ValidationResult) Message() string { return r.message }

// Validator checks a parsed value.
type Validator[T any] func(T) ValidationResult

// Parser converts raw input to a typed value.
type Parser[T any] func(string) (T, error)

// ValidationError is a rejected submission. It never escapes a prompt: the
// prompt shows the message and keeps reading keys.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Outcome is the result of running a Pipeline on raw input.
type Outcome[T any] struct {
	Value   T
	Failure *ValidationError
}

// OK reports whether the input was accepted.
func (o Outcome[T]) OK() bool { return o.Failure == nil }

const (
	defaultInvalidChoiceMessage = "Please select one of the available options"
	defaultValidatorMessage     = "Invalid input"
)

// Pipeline validates raw input in a fixed order: parse, then choice
// membership, then the custom validator. A later stage only runs when every
// earlier one succeeded. Bounds are whatever Validate enforces; the pipeline
// adds none of its own.
type Pipeline[T any] struct {
	Parse                Parser[T]
	TypeName             string // used in the default parse failure message
	ParseErrorMessage    string // replaces "Not a valid <type>"
	Choices              []string
	InvalidChoiceMessage string
	Validate             Validator[T]
}

// Run validates raw input.
func (p Pipeline[T]) Run(raw string) Outcome[T] {
	value, err := p.parse(raw)
	if err != nil {
		return p.fail(p.parseMessage())
	}

	if len(p.Choices) > 0 && !slices.Contains(p.Choices, fmt.Sprint(value)) {
		msg := p.InvalidChoiceMessage
		if msg == "" {
			msg = defaultInvalidChoiceMessage
		}
		return p.fail(msg)
	}

	if p.Validate != nil {
		if result := p.Validate(value); !result.Successful() {
			msg := result.Message()
			if msg == "" {
				msg = defaultValidatorMessage
			}
			return p.fail(msg)
		}
	}

	return Outcome[T]{Value: value}
}

func (p Pipeline[T]) parse(raw string) (T, error) {
	if p.Parse != nil {
		return p.Parse(raw)
	}
	// Without a parser only string prompts make sense
	if v, ok := any(raw).(T); ok {
		return v, nil
	}
	var zero T
	debug.Assert(false, func() string { return fmt.Sprintf("no parser configured for %T", zero) })
	return zero, fmt.Errorf("no parser for %T", zero)
}

func (p Pipeline[T]) parseMessage() string {
	if p.ParseErrorMessage != "" {
		return p.ParseErrorMessage
	}
	name := p.TypeName
	if name == "" {
		var zero T
		name = fmt.Sprintf("%T", zero)
	}
	return "Not a valid " + name
}

func (p Pipeline[T]) fail(msg string) Outcome[T] {
	return Outcome[T]{Failure: &ValidationError{Message: msg}}
}

// ParseString accepts any input unchanged.
func ParseString(raw string) (string, error) { return raw, nil }

// ParseInt parses a base 10 integer, ignoring surrounding spaces.
func ParseInt(raw string) (int, error) { return strconv.Atoi(strings.TrimSpace(raw)) }

// ParseFloat parses a 64-bit float, ignoring surrounding spaces.
func ParseFloat(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

// ParseBool parses the forms accepted by strconv.ParseBool.
func ParseBool(raw string) (bool, error) { return strconv.ParseBool(strings.TrimSpace(raw)) }

// InRange returns a validator accepting values in [lo, hi].
func InRange[T int | int64 | float64](lo, hi T, message string) Validator[T] {
	return func(v T) ValidationResult {
		if v < lo || v > hi {
			return ValidationFailure(message)
		}
		return ValidationSuccess()
	}
}
