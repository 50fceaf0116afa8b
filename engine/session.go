// Package engine narrows a word list down to the words consistent with the
// feedback of every guess played so far.
//
// A Session owns the accumulated knowledge of one game: the admissible
// letters of each position and the min/max occurrence bounds of each letter.
// Both only ever tighten. Each round is applied in a fixed order: greens,
// yellows, grays, bounds, then one filter pass over the candidates.
//
// A Session is not safe for concurrent use. Concurrent games each need their
// own Session.
package engine

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/powellquiring/wordlesieve/letters"
	"github.com/powellquiring/wordlesieve/letterset"
	"github.com/powellquiring/wordlesieve/positions"
)

// Round records one applied guess.
type Round struct {
	Guess   string
	Greens  string
	Yellows string
	Before  int // candidates before the round
	After   int // candidates after the round
}

// Session is one game of narrowing the dictionary down to its candidates.
type Session struct {
	bounds     *letters.Bounds
	positions  *positions.Constraints
	candidates *CandidateList
	rounds     []Round
	logger     zerolog.Logger
}

// Option configures a Session in New.
type Option func(*Session)

// WithLogger sets the logger rounds are reported to. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New starts a session whose candidates are every word of dictionary.
func New(dictionary []string, opts ...Option) *Session {
	s := &Session{
		bounds:     letters.NewBounds(),
		positions:  positions.New(),
		candidates: NewCandidateList(dictionary),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset restarts the game: full bounds, full positions and the full dictionary.
func (s *Session) Reset() {
	s.bounds.Reset()
	s.positions.Reset()
	s.candidates.Reset()
	s.rounds = nil
	s.logger.Debug().
		Int("dictionary", s.candidates.DictionaryLen()).
		Int("candidates", s.candidates.Len()).
		Msg("session reset")
}

// ApplyGuess applies the feedback of one guess and removes every candidate it
// rules out.
//
// greens and yellows are five characters, '-' where the position is not that
// colour and the guess letter where it is. At most one of them may carry a
// letter at any position. The input is expected to be validated already, see
// package feedback.
func (s *Session) ApplyGuess(guess, greens, yellows string) {
	before := s.candidates.Len()
	r := newRound(guess, greens, yellows)
	s.applyGreens(r)
	s.applyYellows(r)
	s.applyGrays(r)
	s.updateBounds(r)
	s.filter()
	after := s.candidates.Len()

	s.rounds = append(s.rounds, Round{Guess: guess, Greens: greens, Yellows: yellows, Before: before, After: after})
	s.logger.Debug().
		Str("guess", guess).
		Str("greens", greens).
		Str("yellows", yellows).
		Int("before", before).
		Int("after", after).
		Msg("applied guess")
}

// Candidates returns the remaining words in dictionary order.
func (s *Session) Candidates() []string {
	return s.candidates.Words()
}

// Len is the number of remaining candidates.
func (s *Session) Len() int {
	return s.candidates.Len()
}

// DictionaryLen is the number of distinct words the session started with.
func (s *Session) DictionaryLen() int {
	return s.candidates.DictionaryLen()
}

// Contains reports whether word is still a candidate.
func (s *Session) Contains(word string) bool {
	return s.candidates.Contains(word)
}

// Admissible returns the letters still possible at the zero based position.
func (s *Session) Admissible(position int) letterset.Set {
	return s.positions.At(position)
}

// Positions returns the admissible letters of every position.
func (s *Session) Positions() [letters.WordLength]letterset.Set {
	return s.positions.Snapshot()
}

// Bound returns the occurrence bound of letter c.
func (s *Session) Bound(c byte) letters.Bound {
	return s.bounds.Get(c)
}

// Bounds returns a copy of every letter's bound.
func (s *Session) Bounds() letters.Bounds {
	return *s.bounds
}

// Rounds returns the guesses applied since the session started or was reset.
func (s *Session) Rounds() []Round {
	return slices.Clone(s.rounds)
}
