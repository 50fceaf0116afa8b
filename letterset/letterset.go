package letterset

import (
	"math/bits"

	"github.com/powellquiring/wordlesieve/letters"
)

// There is a bit for each letter of the alphabet, bit 0 is 'a'
type Set uint32

// allBits has a bit set for every letter
const allBits Set = 1<<letters.Size - 1

func bit(c byte) Set {
	i := letters.Index(c)
	if i < 0 {
		panic("not a lowercase letter: " + string(c))
	}
	return 1 << uint(i)
}

// Full is the set of every letter
func Full() Set {
	return allBits
}

// Of returns the set holding exactly the given letters
func Of(chars string) Set {
	var s Set
	for i := 0; i < len(chars); i++ {
		s |= bit(chars[i])
	}
	return s
}

func (s Set) Contains(c byte) bool {
	return letters.IsLetter(c) && s&bit(c) != 0
}

func (s Set) Add(c byte) Set {
	return s | bit(c)
}

func (s Set) Remove(c byte) Set {
	return s &^ bit(c)
}

// Intersection of base set and other set
func (s Set) Intersection(other Set) Set {
	return s & other
}

// SubsetOf reports whether every letter of s is also in other
func (s Set) SubsetOf(other Set) bool {
	return s&^other == 0
}

// Count (number of set bits).
func (s Set) Count() int {
	return bits.OnesCount32(uint32(s))
}

func (s Set) Empty() bool {
	return s == 0
}

// Single returns the only letter of a singleton set
func (s Set) Single() (byte, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return letters.Letter(bits.TrailingZeros32(uint32(s))), true
}

// NextSet returns the next letter in the set from the specified index,
// including possibly the current index
// along with an error code (true = valid, false = no letter found)
// for i,e := s.NextSet(0); e; i,e = s.NextSet(i + 1) {...}
func (s Set) NextSet(i int) (int, bool) {
	if i >= letters.Size {
		return 0, false
	}
	word := s >> uint(i)
	if word == 0 {
		return 0, false
	}
	return i + bits.TrailingZeros32(uint32(word)), true
}

// Range calls yield for each letter in alphabet order
func (s Set) Range(yield func(i int, c byte) bool) {
	n := 0
	for l, ok := s.NextSet(0); ok; l, ok = s.NextSet(l + 1) {
		if !yield(n, letters.Letter(l)) {
			return
		}
		n++
	}
}

// String lists the letters in alphabet order
func (s Set) String() string {
	ret := make([]byte, 0, s.Count())
	for _, c := range s.Range {
		ret = append(ret, c)
	}
	return string(ret)
}
