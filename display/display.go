// Package display formats session state for the terminal.
package display

import (
	"fmt"
	"iter"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/powellquiring/wordlesieve/feedback"
	"github.com/powellquiring/wordlesieve/letters"
	"github.com/powellquiring/wordlesieve/letterset"
)

const (
	wordsPerLine   = 22
	boundsPerLine  = 4
	separatorWidth = 152
)

var (
	greenTile  = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#6AAA64"))
	yellowTile = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#C9B458"))
	grayTile   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#787C7E"))
)

// Candidates lists words under a count header, wordsPerLine to a line.
func Candidates(words []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d Possible Words\n", len(words))
	b.WriteString(strings.Repeat("=", separatorWidth))
	b.WriteString("\n")
	for i, word := range words {
		b.WriteString(word)
		b.WriteString("  ")
		if (i+1)%wordsPerLine == 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Positions lists the admissible letters of each position, one based.
func Positions(slots [letters.WordLength]letterset.Set) string {
	var b strings.Builder
	for i, slot := range slots {
		fmt.Fprintf(&b, "Character %d: %s\n", i+1, slot)
	}
	return b.String()
}

// Bounds lays out every letter's bound, boundsPerLine to a line. Letters that
// can no longer occur are dashed out.
func Bounds(all iter.Seq2[byte, letters.Bound]) string {
	var b strings.Builder
	i := 0
	for letter, bound := range all {
		if bound.Max > 0 {
			fmt.Fprintf(&b, "(%c, %d, %d)    ", letter, bound.Min, bound.Max)
		} else {
			b.WriteString("---------    ")
		}
		i++
		if i%boundsPerLine == 0 {
			b.WriteString("\n")
		}
	}
	if i%boundsPerLine != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// Tiles renders guess as coloured board tiles.
func Tiles(guess, colours string) string {
	tiles := make([]string, 0, len(guess))
	for i := 0; i < len(guess); i++ {
		letter := strings.ToUpper(string(guess[i]))
		switch colours[i] {
		case feedback.Green:
			tiles = append(tiles, greenTile.Render(letter))
		case feedback.Yellow:
			tiles = append(tiles, yellowTile.Render(letter))
		default:
			tiles = append(tiles, grayTile.Render(letter))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// WriteCandidates replaces the file at path with the Candidates listing.
func WriteCandidates(path string, words []string) error {
	if err := os.WriteFile(path, []byte(Candidates(words)), 0o644); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}
