package letters

// Counter is the number of times each letter occurs in a string.
// Build it with Count and treat it as a value; it is meant for one evaluation.
type Counter [Size]int

// Count counts every letter of text. Characters outside Alphabet, such as the
// '-' placeholder of a feedback pattern, are ignored.
func Count(text string) Counter {
	var c Counter
	for i := 0; i < len(text); i++ {
		if l := Index(text[i]); l >= 0 {
			c[l]++
		}
	}
	return c
}

// Count returns the occurrences of ch.
func (c Counter) Count(ch byte) int {
	i := Index(ch)
	if i < 0 {
		return 0
	}
	return c[i]
}

// CountExcept returns the occurrences of every letter other than ch.
func (c Counter) CountExcept(ch byte) int {
	return c.Total() - c.Count(ch)
}

// Total is the number of letters counted.
func (c Counter) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Range yields each letter of the alphabet in order with its count.
func (c Counter) Range(yield func(letter byte, count int) bool) {
	for i, n := range c {
		if !yield(Letter(i), n) {
			return
		}
	}
}
