// Package wordlist reads the dictionary of five-letter words a session starts from.
//
// A list file holds words separated by commas, spaces or newlines. Words are
// lowercased, anything that is not exactly five letters a-z is dropped, and the
// result is sorted with duplicates removed.
package wordlist

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/powellquiring/wordlesieve/letters"
)

//go:embed words.txt
var embedded string

var ErrEmptyList = errors.New("wordlist: no five-letter words")

// Parse reads a word list from r.
func Parse(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("wordlist: read: %w", err)
	}
	words := normalize(string(data))
	if len(words) == 0 {
		return nil, ErrEmptyList
	}
	return words, nil
}

// Load reads the word list file at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	defer f.Close()
	words, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Default returns the embedded word list.
func Default() []string {
	return normalize(embedded)
}

// LoadOrDefault loads path, or returns the embedded list when path is empty.
func LoadOrDefault(path string) ([]string, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func normalize(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\r' || r == '\t'
	})
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		w := strings.ToLower(field)
		if isWord(w) {
			words = append(words, w)
		}
	}
	slices.Sort(words)
	return slices.Compact(words)
}

func isWord(w string) bool {
	if len(w) != letters.WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if !letters.IsLetter(w[i]) {
			return false
		}
	}
	return true
}
