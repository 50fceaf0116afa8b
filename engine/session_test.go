package engine

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordlesieve/feedback"
	"github.com/powellquiring/wordlesieve/letters"
	"github.com/powellquiring/wordlesieve/letterset"
	"github.com/powellquiring/wordlesieve/wordlist"
)

// play applies the feedback guess would get against solution
func play(s *Session, solution, guess string) {
	greens, yellows := feedback.ScorePatterns(solution, guess)
	s.ApplyGuess(guess, greens, yellows)
}

func TestAllGreen(t *testing.T) {
	s := New([]string{"crane", "crate", "crank", "brine"})
	s.ApplyGuess("crane", "crane", "-----")
	assert.Equal(t, []string{"crane"}, s.Candidates())
	for i := range letters.WordLength {
		c, ok := s.positions.Confirmed(i)
		assert.True(t, ok)
		assert.Equal(t, "crane"[i], c)
	}
	assert.Equal(t, letters.Bound{Min: 1, Max: 1}, s.Bound('c'))
	assert.Equal(t, letters.Bound{Min: 0, Max: 0}, s.Bound('z'))
}

func TestDuplicateGrayWithYellow(t *testing.T) {
	assert := assert.New(t)
	s := New([]string{"aloft", "basic", "bingo", "cable", "chant", "sassy", "track"})
	s.ApplyGuess("sassy", "-----", "-a---")

	assert.Equal([]string{"aloft", "chant", "track"}, s.Candidates())
	assert.Equal(1, s.Bound('a').Min)
	assert.Equal(0, s.Bound('s').Max)
	assert.Equal(0, s.Bound('y').Max)
	assert.Equal(4, s.Bound('z').Max)
	for i := range letters.WordLength {
		assert.False(s.Admissible(i).Contains('s'))
		assert.False(s.Admissible(i).Contains('y'))
	}
	assert.False(s.Admissible(1).Contains('a'))
	assert.True(s.Admissible(0).Contains('a'))
}

func TestTwoGreensOfOneLetter(t *testing.T) {
	assert := assert.New(t)
	s := New([]string{"colon", "donor", "focus", "motor", "robot", "vocal"})
	s.ApplyGuess("robot", "-o-o-", "-----")

	assert.Equal(letterset.Of("o"), s.Admissible(1))
	assert.Equal(letterset.Of("o"), s.Admissible(3))
	assert.GreaterOrEqual(s.Bound('o').Min, 2)
	for _, c := range []byte("rbt") {
		assert.Equal(0, s.Bound(c).Max)
		for _, i := range []int{0, 2, 4} {
			assert.False(s.Admissible(i).Contains(c), string(c))
		}
	}
	assert.Equal([]string{"colon"}, s.Candidates())
}

func TestTwoGuessesPinEveryPosition(t *testing.T) {
	s := New([]string{"crate", "grate", "irate", "prate", "trace"})
	play(s, "grate", "crate")
	assert.Equal(t, []string{"grate", "irate", "prate"}, s.Candidates())
	play(s, "grate", "grate")
	assert.Equal(t, 1, s.Len())
	for i := range letters.WordLength {
		assert.Equal(t, 1, s.Admissible(i).Count())
	}
}

func TestGreenAndGrayOfOneLetter(t *testing.T) {
	// "speed" against "abide": one e is yellow, the other e gray
	s := New([]string{"abide", "eerie", "spend", "tepid", "elder"})
	play(s, "abide", "speed")
	assert.Equal(t, letters.Bound{Min: 1, Max: 1}, s.Bound('e'))
	assert.True(t, s.Contains("abide"))
	assert.False(t, s.Contains("eerie"))
	assert.False(t, s.Contains("spend"))
}

func TestReset(t *testing.T) {
	words := []string{"crate", "grate", "irate", "prate", "trace"}
	s := New(words)
	play(s, "grate", "crate")
	play(s, "grate", "grate")
	require.Len(t, s.Rounds(), 2)

	s.Reset()
	assert.Equal(t, words, s.Candidates())
	assert.Empty(t, s.Rounds())
	for letter, bound := range s.bounds.Range {
		assert.Equal(t, letters.Bound{Min: 0, Max: letters.MaxCount}, bound, string(letter))
	}
	for i := range letters.WordLength {
		assert.Equal(t, letterset.Full(), s.Admissible(i))
	}
}

func TestRounds(t *testing.T) {
	s := New([]string{"crate", "grate", "irate", "prate", "trace"})
	play(s, "grate", "crate")
	assert.Equal(t, []Round{{Guess: "crate", Greens: "-rate", Yellows: "-----", Before: 5, After: 3}}, s.Rounds())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	s := New([]string{"crane", "crate"}, WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	s.ApplyGuess("crane", "crane", "-----")
	assert.Contains(t, buf.String(), `"guess":"crane"`)
	assert.Contains(t, buf.String(), `"after":1`)

	s.Reset()
	assert.Contains(t, buf.String(), `"dictionary":2`)
	assert.Contains(t, buf.String(), `"candidates":2`)
}

func TestDictionaryLen(t *testing.T) {
	s := New([]string{"crane", "crate", "crane"})
	s.ApplyGuess("crane", "crane", "-----")
	assert.Equal(t, 2, s.DictionaryLen())
	assert.Equal(t, 1, s.Len())
}

// Play random games over the embedded list and check that the knowledge only
// ever tightens and that the solution always survives.
func TestRandomGamesNeverLoseTheSolution(t *testing.T) {
	words := wordlist.Default()
	rnd := rand.New(rand.NewPCG(1, 2))
	for range 300 {
		solution := words[rnd.IntN(len(words))]
		s := New(words)
		for range 4 {
			guess := words[rnd.IntN(len(words))]
			bounds := s.Bounds()
			slots := s.Positions()
			before := s.Len()

			play(s, solution, guess)

			require.True(t, s.Contains(solution), "%s lost after guessing %s", solution, guess)
			assert.LessOrEqual(t, s.Len(), before)
			for letter, bound := range s.bounds.Range {
				assert.LessOrEqual(t, bound.Min, bound.Max)
				if bound.Max == 0 {
					assert.Equal(t, 0, bound.Min)
				}
				assert.GreaterOrEqual(t, bound.Min, bounds.Min(letter))
				assert.LessOrEqual(t, bound.Max, bounds.Max(letter))
			}
			for i, slot := range s.Positions() {
				assert.True(t, slot.SubsetOf(slots[i]))
				if _, ok := slots[i].Single(); ok {
					assert.Equal(t, slots[i], slot)
				}
			}
		}
	}
}
