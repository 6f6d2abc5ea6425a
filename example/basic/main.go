// Package main demonstrates basic usage of the inquire library.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/inquire"
)

func main() {
	// Create a console with default settings
	c, err := inquire.NewConsole()
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	ctx := context.Background()

	name, err := inquire.TextPrompt[string]{Title: "What's your name?"}.Run(ctx, c)
	if err != nil {
		switch {
		case errors.Is(err, inquire.ErrNotInteractive):
			fmt.Println("Environment does not support interaction.")
		case errors.Is(err, inquire.ErrInterrupted):
			fmt.Println("\nGoodbye!")
		default:
			log.Fatal(err)
		}
		return
	}

	right, err := inquire.ConfirmPrompt{Title: fmt.Sprintf("Is %q right?", name), Default: true}.Run(ctx, c)
	if err != nil {
		log.Fatal(err)
	}
	if right {
		fmt.Printf("Hello, %s!\n", name)
	} else {
		fmt.Println("Ok... :(")
	}
}
