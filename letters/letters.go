// Package letters holds the alphabet and the per-letter bookkeeping of a game:
// occurrence counts within one string and the min/max occurrence bounds that
// accumulate over a session.
package letters

// Alphabet is the ordered set of letters a word may contain.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

const (
	// Size is the number of letters in Alphabet.
	Size = len(Alphabet)
	// WordLength is the number of letters in every word of the game.
	WordLength = 5
)

// Index maps a lowercase letter to 0..25 and anything else to -1.
func Index(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}

// IsLetter reports whether c is in Alphabet.
func IsLetter(c byte) bool {
	return Index(c) >= 0
}

// Letter returns the i'th letter of Alphabet.
func Letter(i int) byte {
	return Alphabet[i]
}

func mustIndex(c byte) int {
	i := Index(c)
	if i < 0 {
		panic("not a lowercase letter: " + string(c))
	}
	return i
}
