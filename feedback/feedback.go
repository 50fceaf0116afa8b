// Package feedback validates guesses and feedback patterns at the boundary of
// the engine, converts colour strings such as "ryggr" into the greens/yellows
// pattern pair the engine consumes, and scores a guess against a solution.
package feedback

import (
	"errors"
	"fmt"
	"strings"

	"github.com/powellquiring/wordlesieve/letters"
)

// Placeholder marks a position that carries no letter in a greens or yellows pattern.
const Placeholder = '-'

// Colours of a colour string, one per position.
const (
	Red    = 'r' // absent, gray on the board
	Yellow = 'y'
	Green  = 'g'
)

var (
	ErrInvalidWordLength    = errors.New("guess is not five letters")
	ErrUnknownWord          = errors.New("word not available")
	ErrInvalidPatternLength = errors.New("pattern is not five characters")
	ErrPatternGuessMismatch = errors.New("pattern does not match guess")
	ErrPatternConflict      = errors.New("position is both green and yellow")
	ErrInvalidColor         = errors.New("colours must be r, y or g")
)

// WordSet is anything that can tell which words may be guessed.
type WordSet interface {
	Contains(word string) bool
}

// Normalize trims and lowercases user input.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateGuess checks that guess is five letters and a member of words.
func ValidateGuess(guess string, words WordSet) error {
	if len(guess) != letters.WordLength {
		return fmt.Errorf("%w: %q has %d", ErrInvalidWordLength, guess, len(guess))
	}
	if !words.Contains(guess) {
		return fmt.Errorf("%w: %q", ErrUnknownWord, guess)
	}
	return nil
}

// ValidatePattern checks that pattern is five characters and that every
// character other than Placeholder equals the guess letter at that position.
func ValidatePattern(guess, pattern string) error {
	if len(pattern) != letters.WordLength {
		return fmt.Errorf("%w: %q", ErrInvalidPatternLength, pattern)
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != Placeholder && pattern[i] != guess[i] {
			return fmt.Errorf("%w: %q at position %d of %q", ErrPatternGuessMismatch, pattern[i], i+1, guess)
		}
	}
	return nil
}

// ValidateFeedback checks both patterns of a round and that no position is
// claimed by both.
func ValidateFeedback(guess, greens, yellows string) error {
	if err := ValidatePattern(guess, greens); err != nil {
		return fmt.Errorf("greens: %w", err)
	}
	if err := ValidatePattern(guess, yellows); err != nil {
		return fmt.Errorf("yellows: %w", err)
	}
	for i := 0; i < len(greens); i++ {
		if greens[i] != Placeholder && yellows[i] != Placeholder {
			return fmt.Errorf("%w: position %d", ErrPatternConflict, i+1)
		}
	}
	return nil
}

// Split turns a colour string like "rggry" for guess into the greens and
// yellows patterns.
func Split(guess, colours string) (greens, yellows string, err error) {
	if len(colours) != letters.WordLength {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPatternLength, colours)
	}
	if len(guess) != letters.WordLength {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidWordLength, guess)
	}
	g := []byte("-----")
	y := []byte("-----")
	for i := 0; i < len(colours); i++ {
		switch colours[i] {
		case Green:
			g[i] = guess[i]
		case Yellow:
			y[i] = guess[i]
		case Red:
		default:
			return "", "", fmt.Errorf("%w: %q", ErrInvalidColor, colours)
		}
	}
	return string(g), string(y), nil
}

// Join is the reverse of Split.
func Join(greens, yellows string) string {
	ret := []byte("rrrrr")
	for i := 0; i < letters.WordLength; i++ {
		if greens[i] != Placeholder {
			ret[i] = Green
		} else if yellows[i] != Placeholder {
			ret[i] = Yellow
		}
	}
	return string(ret)
}
