// Package score implements the two-pass letter classification used by
// word-guessing games.
package score

import (
	"errors"
	"fmt"
)

// Mark is the classification of one guessed letter.
type Mark int

const (
	// Miss marks a letter absent from the answer, or whose occurrences
	// are already consumed by hits and presents.
	Miss Mark = iota

	// Present marks a letter that exists in the answer at another position.
	Present

	// Hit marks a letter at its correct position.
	Hit
)

// ErrInvalidWord is returned when an answer or guess is empty, contains
// characters outside lowercase a-z, or the two words differ in length.
var ErrInvalidWord = errors.New("invalid word")

// Score classifies guess against answer with the standard two-pass,
// count-decrementing algorithm.
//
// Pass 1 marks exact matches as Hit and counts the remaining (non-hit)
// answer letters. Pass 2 marks each non-hit guess letter Present while
// its letter still has remaining count, decrementing it, and Miss
// otherwise. Bounding presents by the remaining counts is what keeps
// repeated letters from being over-counted: a naive membership test
// would mark every duplicate Present.
func Score(answer, guess string) ([]Mark, error) {
	if len(answer) == 0 || len(answer) != len(guess) {
		return nil, fmt.Errorf("%w: answer %q and guess %q must be non-empty and of equal length", ErrInvalidWord, answer, guess)
	}
	if !IsAlpha(answer) {
		return nil, fmt.Errorf("%w: answer %q must be lowercase a-z", ErrInvalidWord, answer)
	}
	if !IsAlpha(guess) {
		return nil, fmt.Errorf("%w: guess %q must be lowercase a-z", ErrInvalidWord, guess)
	}

	n := len(guess)
	res := make([]Mark, n)

	// Letter frequency for the non-hit answer positions (a-z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = Hit
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == Hit {
			continue
		}
		if j := guess[i] - 'a'; counts[j] > 0 {
			res[i] = Present
			counts[j]--
		}
	}
	return res, nil
}

// IsAlpha reports whether s consists only of lowercase ASCII letters.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
