// Package words loads newline-separated word lists.
//
// Words are trimmed, lowercased and filtered to a fixed length of ASCII
// letters; duplicates are dropped keeping first occurrence order. A small
// embedded list is available as a default so callers can run without any
// configuration.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wordraw/wordraw/internal/score"
)

//go:embed default_words.txt
var embeddedWords string

// ErrInvalidWordList is returned when a word list is unreadable or
// contains no words of the required length.
var ErrInvalidWordList = errors.New("invalid word list")

// Load reads newline-separated words from r, keeping only words of the
// given length made of letters a-z (after trimming and lowercasing).
// The returned list preserves source order with duplicates removed.
func Load(r io.Reader, length int) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) != length || !score.IsAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWordList, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no words of length %d", ErrInvalidWordList, length)
	}
	return out, nil
}

// LoadFile loads a word list from a file. The file is opened, read fully
// and closed before returning.
func LoadFile(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWordList, err)
	}
	defer f.Close()
	list, err := Load(f, length)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Default returns the embedded word list.
func Default() []string {
	list, err := Load(strings.NewReader(embeddedWords), 5)
	if err != nil {
		// The embedded list is part of the build; an empty result is a
		// packaging bug, not a runtime condition.
		panic(err)
	}
	return list
}
