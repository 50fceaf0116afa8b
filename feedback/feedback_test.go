package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordSet map[string]bool

func (w wordSet) Contains(word string) bool { return w[word] }

func TestValidateGuess(t *testing.T) {
	words := wordSet{"crane": true}
	assert.NoError(t, ValidateGuess("crane", words))
	assert.ErrorIs(t, ValidateGuess("cranes", words), ErrInvalidWordLength)
	assert.ErrorIs(t, ValidateGuess("cran", words), ErrInvalidWordLength)
	assert.ErrorIs(t, ValidateGuess("crate", words), ErrUnknownWord)
}

func TestValidatePattern(t *testing.T) {
	tests := []struct {
		name    string
		guess   string
		pattern string
		err     error
	}{
		{"placeholders", "crane", "-----", nil},
		{"all letters", "crane", "crane", nil},
		{"some letters", "robot", "-o-o-", nil},
		{"too short", "crane", "cra", ErrInvalidPatternLength},
		{"too long", "crane", "crane-", ErrInvalidPatternLength},
		{"wrong letter", "crane", "-x---", ErrPatternGuessMismatch},
		{"shifted letter", "crane", "r----", ErrPatternGuessMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePattern(tt.guess, tt.pattern)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestValidateFeedback(t *testing.T) {
	assert.NoError(t, ValidateFeedback("sassy", "-----", "-a---"))
	assert.ErrorIs(t, ValidateFeedback("sassy", "-a---", "-a---"), ErrPatternConflict)
	assert.ErrorIs(t, ValidateFeedback("sassy", "-b---", "-----"), ErrPatternGuessMismatch)
	assert.ErrorIs(t, ValidateFeedback("sassy", "-----", "--"), ErrInvalidPatternLength)
}

func TestSplit(t *testing.T) {
	assert := assert.New(t)
	greens, yellows, err := Split("axxaa", "grryr")
	require.NoError(t, err)
	assert.Equal("a----", greens)
	assert.Equal("---a-", yellows)
	assert.Equal("grryr", Join(greens, yellows))

	_, _, err = Split("axxaa", "grry")
	assert.ErrorIs(err, ErrInvalidPatternLength)
	_, _, err = Split("axxaa", "grrbr")
	assert.ErrorIs(err, ErrInvalidColor)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "crane", Normalize("  CRane\n"))
}

func TestScore(t *testing.T) {
	tests := []struct {
		solution, guess, colours string
	}{
		{"crane", "crane", "ggggg"},
		{"grate", "crate", "rgggg"},
		{"abazz", "axxxa", "grrry"},
		{"abazz", "axxaa", "grryr"},
		{"drama", "aaxxd", "yyrry"},
		{"abbbb", "bxxac", "yrryr"},
		{"botox", "robot", "rgygy"},
		{"sugar", "sassy", "gyrrr"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.colours, Score(tt.solution, tt.guess), tt.solution+"/"+tt.guess)
	}
}

func TestScorePatterns(t *testing.T) {
	greens, yellows := ScorePatterns("botox", "robot")
	assert.Equal(t, "-o-o-", greens)
	assert.Equal(t, "--b-t", yellows)
}
