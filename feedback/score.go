package feedback

import "github.com/powellquiring/wordlesieve/letters"

// Score returns the colour string the game shows when guess is played against
// solution. Greens are resolved first, then each remaining guess letter is
// yellow while unmatched copies of it are left in the solution.
func Score(solution, guess string) string {
	colours := []byte("rrrrr")
	var solutionNotGreen letters.Counter
	for i := 0; i < letters.WordLength; i++ {
		if solution[i] == guess[i] {
			colours[i] = Green
		} else {
			solutionNotGreen[letters.Index(solution[i])]++
		}
	}
	// turn the red to yellow if in the word but not green
	for i := 0; i < letters.WordLength; i++ {
		if colours[i] != Red {
			continue
		}
		l := letters.Index(guess[i])
		if solutionNotGreen[l] > 0 {
			colours[i] = Yellow
			solutionNotGreen[l]--
		}
	}
	return string(colours)
}

// ScorePatterns is Score split into greens and yellows patterns.
func ScorePatterns(solution, guess string) (greens, yellows string) {
	greens, yellows, err := Split(guess, Score(solution, guess))
	if err != nil {
		panic("bad score for " + guess + ": " + err.Error())
	}
	return greens, yellows
}
