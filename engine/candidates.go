package engine

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// CandidateList is the sorted dictionary of a session together with the set
// of words still consistent with the feedback. Words are only ever removed;
// Reset brings back the full dictionary.
type CandidateList struct {
	words []string
	index map[string]uint
	alive *bitset.BitSet // a bit for each word of words
}

// NewCandidateList returns a list holding every word of dictionary. The input
// is copied, sorted and de-duplicated.
func NewCandidateList(dictionary []string) *CandidateList {
	words := slices.Clone(dictionary)
	slices.Sort(words)
	words = slices.Compact(words)
	ret := &CandidateList{words: words}
	ret.index = make(map[string]uint, len(words))
	for i, word := range words {
		ret.index[word] = uint(i)
	}
	ret.Reset()
	return ret
}

// Reset makes every dictionary word a candidate again.
func (cl *CandidateList) Reset() {
	wordsLen := uint(len(cl.words))
	cl.alive = bitset.New(wordsLen).Complement()
}

// Len is the number of remaining candidates.
func (cl *CandidateList) Len() int {
	return int(cl.alive.Count())
}

// DictionaryLen is the number of words the list started with.
func (cl *CandidateList) DictionaryLen() int {
	return len(cl.words)
}

// Contains reports whether word is still a candidate.
func (cl *CandidateList) Contains(word string) bool {
	i, ok := cl.index[word]
	return ok && cl.alive.Test(i)
}

// Range yields the remaining candidates in dictionary order.
func (cl *CandidateList) Range(yield func(i int, word string) bool) {
	i := 0
	for w, ok := cl.alive.NextSet(0); ok; w, ok = cl.alive.NextSet(w + 1) {
		if !yield(i, cl.words[w]) {
			return
		}
		i++
	}
}

// Words returns the remaining candidates in dictionary order.
func (cl *CandidateList) Words() []string {
	ret := make([]string, 0, cl.Len())
	for _, word := range cl.Range {
		ret = append(ret, word)
	}
	return ret
}

// RemoveIf drops every candidate for which reject returns true. It makes a
// single pass and reports how many words were removed.
func (cl *CandidateList) RemoveIf(reject func(word string) bool) int {
	removed := 0
	for w, ok := cl.alive.NextSet(0); ok; w, ok = cl.alive.NextSet(w + 1) {
		if reject(cl.words[w]) {
			cl.alive.Clear(w)
			removed++
		}
	}
	return removed
}
