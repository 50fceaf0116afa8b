package engine

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/powellquiring/wordlesieve/letters"
	"github.com/powellquiring/wordlesieve/letterset"
)

const placeholder = '-'

// round is one guess with its feedback and the letters derived from it.
type round struct {
	guess   string
	greens  string
	yellows string
	grays   string // guess letter where the position is neither green nor yellow, '-' elsewhere

	green  mapset.Set // letters green somewhere in this guess
	yellow mapset.Set // letters yellow somewhere in this guess
	gray   mapset.Set // letters uncoloured somewhere in this guess

	numGrays int
}

func newRound(guess, greens, yellows string) round {
	r := round{
		guess:   guess,
		greens:  greens,
		yellows: yellows,
		green:   mapset.NewThreadUnsafeSet(),
		yellow:  mapset.NewThreadUnsafeSet(),
		gray:    mapset.NewThreadUnsafeSet(),
	}
	grays := []byte("-----")
	for i := 0; i < letters.WordLength; i++ {
		c := guess[i]
		if greens[i] != placeholder {
			r.green.Add(greens[i])
		}
		if yellows[i] != placeholder {
			r.yellow.Add(yellows[i])
		}
		if greens[i] != c && yellows[i] != c {
			grays[i] = c
			r.gray.Add(c)
			r.numGrays++
		}
	}
	r.grays = string(grays)
	return r
}

func (s *Session) applyGreens(r round) {
	for i := 0; i < letters.WordLength; i++ {
		if c := r.greens[i]; c != placeholder {
			s.positions.RestrictTo(i, c)
		}
	}
}

// a yellow letter is in the word, just never at this position
func (s *Session) applyYellows(r round) {
	for i := 0; i < letters.WordLength; i++ {
		if c := r.yellows[i]; c != placeholder {
			s.positions.RemoveAt(i, c)
		}
	}
}

// applyGrays strips uncoloured letters from the positions they can no longer
// occupy. A letter that is also green in this guess keeps its green
// positions. A letter that is also yellow only loses its own position.
func (s *Session) applyGrays(r round) {
	for i := 0; i < letters.WordLength; i++ {
		c := r.grays[i]
		if c == placeholder {
			continue
		}
		isGreen := r.green.Contains(c)
		isYellow := r.yellow.Contains(c)
		if !isYellow {
			for y := 0; y < letters.WordLength; y++ {
				if _, confirmed := s.positions.Confirmed(y); confirmed {
					continue
				}
				if !isGreen || r.greens[y] != c {
					s.positions.RemoveAt(y, c)
				}
			}
		} else {
			s.positions.RemoveAt(i, c)
		}
	}
}

// updateBounds tightens the occurrence bounds of every letter from this
// round's colours. Bounds are only ever tightened.
func (s *Session) updateBounds(r round) {
	inGuess := letterset.Of(r.guess)
	matched := letters.Count(r.greens + r.yellows)
	yellowCount := letters.Count(r.yellows)

	for i := 0; i < letters.Size; i++ {
		c := letters.Letter(i)
		if !inGuess.Contains(c) {
			// unguessed letters can only fill the uncoloured slots
			s.bounds.TightenMax(c, r.numGrays)
			continue
		}
		isGreen := r.green.Contains(c)
		isYellow := r.yellow.Contains(c)
		if !isGreen && !isYellow {
			s.bounds.TightenMax(c, 0)
			continue
		}

		count := matched.Count(c)
		isGray := r.gray.Contains(c)
		s.bounds.RaiseMin(c, count)
		if isGray {
			// an uncoloured copy means every copy has been found
			s.bounds.TightenMax(c, count)
		} else {
			s.bounds.TightenMax(c, letters.MaxCount-matched.CountExcept(c))
		}
		switch {
		case isYellow && isGreen && !isGray:
			s.bounds.TightenMax(c, letters.MaxCount-yellowCount.Count(c))
		case isYellow && !isGreen && !isGray:
			s.bounds.TightenMax(c, letters.MaxCount-count)
		}
	}
}

// filter drops every candidate that breaks a position or a letter bound.
func (s *Session) filter() {
	s.candidates.RemoveIf(func(word string) bool {
		if position, ok := s.positions.Admits(word); !ok {
			s.logger.Trace().Str("word", word).Int("position", position+1).Msg("removed")
			return true
		}
		if letter, ok := s.bounds.Admits(letters.Count(word)); !ok {
			s.logger.Trace().Str("word", word).Str("letter", string(letter)).Msg("removed")
			return true
		}
		return false
	})
}
