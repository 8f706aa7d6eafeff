// Package wordlist loads dictionary words and applies the length and
// character filters that decide which words become domain candidates.
package wordlist

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lexhunt/lexhuntcli/internal/domain"
)

// Filter selects words by length. Exactly one mode applies: an exact
// Length, or a MinLength with optional MaxLength. The zero Filter
// accepts every word.
type Filter struct {
	Length    int
	MinLength int
	MaxLength int
}

// Validate rejects filter combinations that cannot be satisfied.
func (f Filter) Validate() error {
	if f.Length < 0 || f.MinLength < 0 || f.MaxLength < 0 {
		return fmt.Errorf("wordlist: lengths must be positive")
	}
	if f.Length > 0 && (f.MinLength > 0 || f.MaxLength > 0) {
		return fmt.Errorf("wordlist: exact length is exclusive with min/max length")
	}
	if f.MaxLength > 0 && f.MinLength == 0 {
		return fmt.Errorf("wordlist: max length requires min length")
	}
	if f.MinLength > 0 && f.MaxLength > 0 && f.MaxLength < f.MinLength {
		return fmt.Errorf("wordlist: max length %d is below min length %d", f.MaxLength, f.MinLength)
	}
	return nil
}

func (f Filter) match(word string) bool {
	n := len(word)
	if f.Length > 0 {
		return n == f.Length
	}
	if f.MinLength > 0 && n < f.MinLength {
		return false
	}
	if f.MaxLength > 0 && n > f.MaxLength {
		return false
	}
	return true
}

// Load reads the dictionary file at path and returns the lowercased,
// alphabetic-only words passing the filter, in file order.
func Load(path string, f Filter) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	defer file.Close()

	words, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("wordlist: read %s: %w", path, err)
	}
	return words, nil
}

// Read filters words from r. Lines are trimmed and lowercased; lines
// containing anything but ASCII letters are dropped.
func Read(r io.Reader, f Filter) ([]string, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	lines, err := domain.ReadLines(r)
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.ToLower(line)
		if !isAlpha(w) {
			continue
		}
		if !f.match(w) {
			continue
		}
		words = append(words, w)
	}
	return words, nil
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
