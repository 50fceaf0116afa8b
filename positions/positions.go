// Package positions tracks which letters are still admissible at each
// position of the target word.
package positions

import (
	"github.com/powellquiring/wordlesieve/letters"
	"github.com/powellquiring/wordlesieve/letterset"
)

// Constraints holds one admissible letter set per position. Positions are
// zero based. A set only ever shrinks, and it is never emptied.
type Constraints struct {
	slots [letters.WordLength]letterset.Set
}

// New returns constraints admitting every letter everywhere.
func New() *Constraints {
	c := &Constraints{}
	c.Reset()
	return c
}

// Reset admits every letter at every position again.
func (c *Constraints) Reset() {
	for i := range c.slots {
		c.slots[i] = letterset.Full()
	}
}

// RestrictTo collapses position to the single letter ch. Nothing changes if
// ch is no longer admissible there, since that would grow the set.
func (c *Constraints) RestrictTo(position int, ch byte) {
	only := letterset.Of(string(ch))
	if !c.slots[position].Intersection(only).Empty() {
		c.slots[position] = only
	}
}

// RemoveAt removes ch from the set at position. The last admissible letter of
// a position is never removed. It reports whether the set changed.
func (c *Constraints) RemoveAt(position int, ch byte) bool {
	slot := c.slots[position]
	rest := slot.Remove(ch)
	if rest == slot || rest.Empty() {
		return false
	}
	c.slots[position] = rest
	return true
}

// IsAdmissible reports whether ch may still appear at position.
func (c *Constraints) IsAdmissible(position int, ch byte) bool {
	return c.slots[position].Contains(ch)
}

// Confirmed returns the letter at position once the set is a singleton.
func (c *Constraints) Confirmed(position int) (byte, bool) {
	return c.slots[position].Single()
}

// At returns the admissible set of position.
func (c *Constraints) At(position int) letterset.Set {
	return c.slots[position]
}

// Snapshot returns a copy of every position's set, in position order.
func (c *Constraints) Snapshot() [letters.WordLength]letterset.Set {
	return c.slots
}

// Admits reports whether word fits every position. On failure it also returns
// the first position that rejects the word.
func (c *Constraints) Admits(word string) (int, bool) {
	for i := range c.slots {
		if !c.slots[i].Contains(word[i]) {
			return i, false
		}
	}
	return 0, true
}
