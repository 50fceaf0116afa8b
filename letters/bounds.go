package letters

import "fmt"

// MaxCount is the most times a letter can occur in a word.
const MaxCount = WordLength

// Bound is the inclusive range of occurrences allowed for one letter.
type Bound struct {
	Min int
	Max int
}

func (b Bound) String() string {
	return fmt.Sprintf("[%d, %d]", b.Min, b.Max)
}

// Admits reports whether count lies within the bound.
func (b Bound) Admits(count int) bool {
	return count >= b.Min && count <= b.Max
}

// Bounds tracks, per letter, how many times the letter may occur in the target word.
//
// Min <= Max holds for every letter after every operation, and a letter with
// Max == 0 always has Min == 0. Arguments breaking that are clamped rather
// than rejected.
type Bounds struct {
	letters [Size]Bound
}

// NewBounds returns bounds where every letter may occur 0..MaxCount times.
func NewBounds() *Bounds {
	b := &Bounds{}
	b.Reset()
	return b
}

// Reset loosens every letter back to 0..MaxCount.
func (b *Bounds) Reset() {
	for i := range b.letters {
		b.letters[i] = Bound{Min: 0, Max: MaxCount}
	}
}

// Get returns the bound of c.
func (b *Bounds) Get(c byte) Bound {
	return b.letters[mustIndex(c)]
}

func (b *Bounds) Min(c byte) int {
	return b.letters[mustIndex(c)].Min
}

func (b *Bounds) Max(c byte) int {
	return b.letters[mustIndex(c)].Max
}

// Possible reports whether c can still occur at all.
func (b *Bounds) Possible(c byte) bool {
	return b.Max(c) > 0
}

// IncrementMin raises the minimum of c by one, as long as it stays within the maximum.
func (b *Bounds) IncrementMin(c byte) {
	l := &b.letters[mustIndex(c)]
	if l.Min < l.Max {
		l.Min++
	}
}

// DecrementMax lowers the maximum of c by one. It is a no-op when the maximum
// already equals the minimum.
func (b *Bounds) DecrementMax(c byte) {
	l := &b.letters[mustIndex(c)]
	if l.Max > l.Min {
		l.Max--
		if l.Max == 0 {
			l.Min = 0
		}
	}
}

// SetMax sets the maximum of c. The maximum never drops below the established
// minimum: a smaller amount is raised to the minimum.
func (b *Bounds) SetMax(c byte, amount int) {
	l := &b.letters[mustIndex(c)]
	amount = min(amount, MaxCount)
	if amount < l.Min {
		amount = l.Min
	}
	l.Max = amount
	if l.Max == 0 {
		l.Min = 0
	}
}

// TightenMax sets the maximum of c to amount only if that is lower than the
// current maximum.
func (b *Bounds) TightenMax(c byte, amount int) {
	if amount < b.Max(c) {
		b.SetMax(c, amount)
	}
}

// SetMin sets the minimum of c, clamped to 0..Max.
func (b *Bounds) SetMin(c byte, amount int) {
	l := &b.letters[mustIndex(c)]
	l.Min = max(0, min(amount, l.Max))
}

// RaiseMin sets the minimum of c to amount only if that is larger than the
// current minimum.
func (b *Bounds) RaiseMin(c byte, amount int) {
	if amount > b.Min(c) {
		b.SetMin(c, amount)
	}
}

// Admits reports whether every letter counted in counts is within its bound.
// The first letter out of bounds is returned when it is not.
func (b *Bounds) Admits(counts Counter) (byte, bool) {
	for i, n := range counts {
		if !b.letters[i].Admits(n) {
			return Letter(i), false
		}
	}
	return 0, true
}

// Range yields every letter in alphabet order with its bound.
func (b *Bounds) Range(yield func(letter byte, bound Bound) bool) {
	for i, l := range b.letters {
		if !yield(Letter(i), l) {
			return
		}
	}
}
