package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/powellquiring/wordlesieve/display"
	"github.com/powellquiring/wordlesieve/engine"
	"github.com/powellquiring/wordlesieve/feedback"
)

// filterWords applies guess/colours pairs to a fresh session and prints what is left
func filterWords(w io.Writer, globalConfig GlobalConfiguration, args []string) error {
	s := engine.New(globalConfig.words, engine.WithLogger(globalConfig.logger))
	for i := 0; i+1 < len(args); i += 2 {
		guess := feedback.Normalize(args[i])
		colours := feedback.Normalize(args[i+1])
		if err := feedback.ValidateGuess(guess, s); err != nil {
			return cli.Exit(err.Error(), 3)
		}
		greens, yellows, err := feedback.Split(guess, colours)
		if err != nil {
			return cli.Exit(err.Error(), 4)
		}
		s.ApplyGuess(guess, greens, yellows)
		fmt.Fprintln(w, display.Tiles(guess, colours))
	}
	fmt.Fprintln(w, display.Candidates(s.Candidates()))
	return nil
}
