package display

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordlesieve/letters"
	"github.com/powellquiring/wordlesieve/letterset"
)

func TestCandidates(t *testing.T) {
	words := make([]string, 23)
	for i := range words {
		words[i] = "crane"
	}
	out := Candidates(words)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "23 Possible Words", lines[0])
	assert.Equal(t, strings.Repeat("=", 152), lines[1])
	assert.Equal(t, strings.Repeat("crane  ", 22), lines[2])
	assert.Equal(t, "crane  ", lines[3])
}

func TestCandidatesEmpty(t *testing.T) {
	assert.True(t, strings.HasPrefix(Candidates(nil), "0 Possible Words\n"))
}

func TestPositions(t *testing.T) {
	slots := [letters.WordLength]letterset.Set{
		letterset.Of("c"), letterset.Full(), letterset.Of("ab"), letterset.Of("o"), letterset.Of("xyz"),
	}
	assert.Equal(t, "Character 1: c\n"+
		"Character 2: abcdefghijklmnopqrstuvwxyz\n"+
		"Character 3: ab\n"+
		"Character 4: o\n"+
		"Character 5: xyz\n", Positions(slots))
}

func TestBounds(t *testing.T) {
	b := letters.NewBounds()
	b.SetMax('b', 0)
	b.SetMin('c', 1)
	out := Bounds(b.Range)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "(a, 0, 5)    ---------    (c, 1, 5)    (d, 0, 5)    ", lines[0])
	assert.Equal(t, "(y, 0, 5)    (z, 0, 5)    ", lines[6])
}

func TestTiles(t *testing.T) {
	out := Tiles("crane", "gyrrg")
	for _, c := range "CRANE" {
		assert.Contains(t, out, string(c))
	}
}

func TestWriteCandidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "possible_words.txt")
	require.NoError(t, WriteCandidates(path, []string{"crane", "crate"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Candidates([]string{"crane", "crate"}), string(data))
}
