// Package main walks through every prompt kind and prints a summary of the
// answers, including the ones left unanswered when Ctrl+C stops the run.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"slices"

	"github.com/nao1215/inquire"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	scheme, err := cfg.colorScheme()
	if err != nil {
		log.Fatal(err)
	}

	// Ctrl+C between prompts arrives as a signal, during a prompt as a key
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c, err := inquire.NewConsole(inquire.WithColorScheme(scheme))
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	if !c.IsInteractive() {
		fmt.Fprintln(os.Stderr, "Environment does not support interaction.")
		os.Exit(1)
	}

	run, err := inquire.ConfirmPrompt{Title: "Run prompt example?", Default: true}.Run(ctx, c)
	switch {
	case errors.Is(err, inquire.ErrInterrupted):
		c.Println("Canceled... :(")
		return
	case err != nil:
		log.Fatal(err)
	case !run:
		c.Println("Ok... :(")
		return
	}

	answers, err := inquire.Sequence{
		Steps: steps(cfg.PageSize),
		Before: func(c *inquire.Console, _ int, step inquire.Step) {
			c.Println()
			c.Rule(sections[step.Name])
		},
	}.Run(ctx, c)
	if err != nil {
		log.Fatal(err)
	}
	if answers.Cancelled() {
		c.Println()
	}

	c.Println()
	c.Rule("Results")
	c.Println(summary(answers))
}

var sections = map[string]string{
	"name":     "Strings",
	"fruit":    "Lists",
	"sport":    "Choices",
	"age":      "Integers",
	"password": "Secrets",
	"mask":     "Mask",
	"nullmask": "Null Mask",
	"color":    "Optional",
}

var (
	berries = []string{"Blackcurrant", "Blueberry", "Cloudberry", "Elderberry", "Honeyberry", "Mulberry"}
	fruits  = []string{
		"Apple", "Apricot", "Avocado", "Banana",
		"Cherry", "Cocunut", "Date", "Dragonfruit", "Durian",
		"Egg plant", "Fig", "Grape", "Guava",
		"Jackfruit", "Jambul", "Kiwano", "Kiwifruit", "Lime", "Lylo",
		"Lychee", "Melon", "Nectarine", "Orange", "Olive",
	}
)

const moreFruitsText = "(Move up and down to reveal more fruits)"

func steps(pageSize int) []inquire.Step {
	return []inquire.Step{
		inquire.Bind("name", inquire.TextPrompt[string]{Title: "What's your name?"}.Run),
		{Name: "fruit", Run: askFruit(pageSize)},
		inquire.Bind("sport", inquire.TextPrompt[string]{
			Title:                "What's your favorite sport?",
			Choices:              []string{"Soccer", "Hockey", "Basketball"},
			InvalidChoiceMessage: "That's not a sport!",
			Default:              inquire.Ptr("Sport?"),
		}.Run),
		inquire.Bind("age", inquire.TextPrompt[int]{
			Title:                  "How old are you?",
			Parse:                  inquire.ParseInt,
			ValidationErrorMessage: "That's not a valid age",
			Validate: func(age int) inquire.ValidationResult {
				switch {
				case age <= 0:
					return inquire.ValidationFailure("You must at least be 1 years old")
				case age >= 123:
					return inquire.ValidationFailure("You must be younger than the oldest person alive")
				}
				return inquire.ValidationSuccess()
			},
		}.Run),
		inquire.Bind("password", inquire.TextPrompt[string]{Title: "Enter password?", Mask: inquire.DefaultMask()}.Run),
		inquire.Bind("mask", inquire.TextPrompt[string]{Title: "Enter password?", Mask: inquire.MaskWith('-')}.Run),
		inquire.Bind("nullmask", inquire.TextPrompt[string]{Title: "Enter password?", Mask: inquire.SilentMask()}.Run),
		inquire.Bind("color", inquire.TextPrompt[string]{Title: "[Optional] What is your favorite color?", AllowEmpty: true}.Run),
	}
}

// askFruit asks for favorite fruits and, unless exactly one was picked,
// narrows the picks down to one. With no picks there is no favorite.
func askFruit(pageSize int) func(ctx context.Context, c *inquire.Console) (any, error) {
	return func(ctx context.Context, c *inquire.Console) (any, error) {
		favorites, err := inquire.MultiSelectPrompt{
			Title:            "What are your favorite fruits?",
			Choices:          slices.Concat(inquire.ChoiceGroup("Berries", berries...), inquire.Choices(fruits...)),
			PageSize:         pageSize,
			MoreChoicesText:  moreFruitsText,
			InstructionsText: "(Press <space> to toggle a fruit, <enter> to accept)",
		}.Run(ctx, c)
		if err != nil {
			return nil, err
		}

		var fruit string
		switch len(favorites) {
		case 0:
			c.Println("You selected: nothing")
			return "", nil
		case 1:
			fruit = favorites[0]
		default:
			fruit, err = inquire.SelectPrompt{
				Title:           "Ok, but if you could only choose one?",
				Choices:         inquire.Choices(favorites...),
				PageSize:        pageSize,
				EnableSearch:    true,
				MoreChoicesText: moreFruitsText,
			}.Run(ctx, c)
			if err != nil {
				return nil, err
			}
		}

		c.Printf("You selected: %s\n", fruit)
		return fruit, nil
	}
}
