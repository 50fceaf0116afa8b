package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/powellquiring/wordlesieve/display"
	"github.com/powellquiring/wordlesieve/engine"
	"github.com/powellquiring/wordlesieve/feedback"
	"github.com/powellquiring/wordlesieve/letters"
)

const menu = `Functions:
S: Stops the game
P: Prints the possible words
R: Restarts the game
C: All possible characters
B: Letter bounds
Please enter a word: `

var rule = strings.Repeat("=", 49)

const (
	greensPrompt  = "Please type your guess again, but replace gray and yellow characters with '-': "
	yellowsPrompt = "Please type your guess again, but replace gray and green characters with '-': "
)

// interactive is one play session reading commands and guesses from in
type interactive struct {
	in           *bufio.Scanner
	out          io.Writer
	globalConfig GlobalConfiguration
	session      *engine.Session
}

func playInteractive(r io.Reader, w io.Writer, globalConfig GlobalConfiguration) error {
	game := &interactive{
		in:           bufio.NewScanner(r),
		out:          w,
		globalConfig: globalConfig,
		session:      engine.New(globalConfig.words, engine.WithLogger(globalConfig.logger)),
	}
	return game.run()
}

func (g *interactive) run() error {
	if err := g.save(); err != nil {
		return err
	}
	guesses := g.globalConfig.guesses
	for guesses > 0 {
		fmt.Fprintln(g.out, rule)
		fmt.Fprintf(g.out, "%d guesses remaining\n", guesses)
		fmt.Fprint(g.out, menu)
		line, err := g.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		switch strings.ToUpper(line) {
		case "S":
			return nil
		case "P":
			fmt.Fprintf(g.out, "\n%s\n\n", display.Candidates(g.session.Candidates()))
		case "R":
			g.session.Reset()
			guesses = g.globalConfig.guesses
		case "C":
			fmt.Fprint(g.out, display.Positions(g.session.Positions()))
		case "B":
			bounds := g.session.Bounds()
			fmt.Fprint(g.out, display.Bounds(bounds.Range))
		default:
			played, err := g.guess(feedback.Normalize(line))
			if err != nil {
				return err
			}
			if played {
				guesses--
			}
		}
		fmt.Fprintln(g.out, rule)
	}
	return nil
}

// guess validates and plays one word, it reports false when the word was rejected
func (g *interactive) guess(word string) (bool, error) {
	if err := feedback.ValidateGuess(word, g.session); err != nil {
		switch {
		case len(word) > letters.WordLength:
			fmt.Fprintln(g.out, "Word is too long, please try again.")
		case len(word) < letters.WordLength:
			fmt.Fprintln(g.out, "Word is too short, please try again")
		default:
			fmt.Fprintln(g.out, "Word not available, please try again.")
		}
		return false, nil
	}
	greens, yellows, err := g.readFeedback(word)
	if err != nil {
		return false, err
	}
	g.session.ApplyGuess(word, greens, yellows)
	fmt.Fprintln(g.out, display.Tiles(word, feedback.Join(greens, yellows)))
	return true, g.save()
}

// readFeedback prompts until both patterns are valid for word
func (g *interactive) readFeedback(word string) (string, string, error) {
	for {
		greens, err := g.readPattern(greensPrompt, word)
		if err != nil {
			return "", "", err
		}
		yellows, err := g.readPattern(yellowsPrompt, word)
		if err != nil {
			return "", "", err
		}
		if err := feedback.ValidateFeedback(word, greens, yellows); err == nil {
			return greens, yellows, nil
		}
		fmt.Fprintln(g.out, "A letter can not be both green and yellow, please try again.")
	}
}

func (g *interactive) readPattern(prompt, word string) (string, error) {
	for {
		fmt.Fprint(g.out, prompt)
		line, err := g.readLine()
		if err != nil {
			return "", err
		}
		pattern := feedback.Normalize(line)
		if feedback.ValidatePattern(word, pattern) == nil {
			return pattern, nil
		}
		fmt.Fprintln(g.out, "Invalid input, please try again.")
	}
}

func (g *interactive) readLine() (string, error) {
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(g.in.Text()), nil
}

func (g *interactive) save() error {
	if g.globalConfig.save == "" {
		return nil
	}
	return display.WriteCandidates(g.globalConfig.save, g.session.Candidates())
}
