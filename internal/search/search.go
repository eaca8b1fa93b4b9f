// Package search scans a word list for guesses whose classification
// rows, mapped through a label grouping, reproduce a desired pattern
// board against a shared target word.
package search

import (
	"errors"
	"fmt"

	"github.com/wordraw/wordraw/internal/score"
)

// ErrInvalidPattern is returned when a desired pattern board does not
// fit the target word or the grouping.
var ErrInvalidPattern = errors.New("invalid pattern")

// Grouping maps classification marks to pattern group indices. Pos is
// the mark's position within its group and feeds the rating bonus.
type Grouping struct {
	Group [3]int
	Pos   [3]int
	N     int // number of groups
}

// Round is the outcome of matching one desired row.
type Round struct {
	// Word is the first word in list order whose mapped classification
	// row equals the desired row, or empty when none does.
	Word string

	// Candidates are the equal-best words by rating, in list order.
	Candidates []string

	// Rating is the candidates' score.
	Rating int
}

// Result holds one Round per desired pattern row.
type Result struct {
	Rounds []Round
}

// Params configures a search run.
type Params struct {
	Target        string
	Grouping      Grouping
	AllowEarlyWin bool // permit the target itself before the final round
}

// Run scans list once, in order, and resolves every round of the desired
// pattern board. A round with no exact match keeps an empty Word; this
// is a normal result, not an error. The scan is an exhaustive linear
// pass: word lists are at most a few thousand entries and the tool runs
// offline.
func Run(list []string, pattern [][]int, p Params) (*Result, error) {
	if err := validatePattern(pattern, len(p.Target), p.Grouping.N); err != nil {
		return nil, err
	}

	rounds := len(pattern)
	res := &Result{Rounds: make([]Round, rounds)}
	for i := range res.Rounds {
		res.Rounds[i].Rating = -1
	}

	for _, word := range list {
		marks, err := score.Score(p.Target, word)
		if err != nil {
			return nil, err
		}

		row := make([]int, len(marks))
		for i, m := range marks {
			row[i] = p.Grouping.Group[m]
		}

		for r := 0; r < rounds; r++ {
			// Suggesting the target before the last round would end the
			// game early.
			if !p.AllowEarlyWin && word == p.Target && r != rounds-1 {
				continue
			}

			round := &res.Rounds[r]
			if round.Word == "" && rowsEqual(row, pattern[r]) {
				round.Word = word
			}

			switch rating := rate(marks, pattern[r], p.Grouping); {
			case rating > round.Rating:
				round.Rating = rating
				round.Candidates = []string{word}
			case rating == round.Rating:
				round.Candidates = append(round.Candidates, word)
			}
		}
	}

	// Rounds untouched by the scan (empty word list, or an early-win-only
	// row) report a zero rating rather than the scan sentinel.
	for i := range res.Rounds {
		if res.Rounds[i].Rating < 0 {
			res.Rounds[i].Rating = 0
		}
	}
	return res, nil
}

// rate scores a classification against a desired row: 10 points per
// position whose mark falls in the desired group, plus a 0-2 bonus for
// marks listed earlier within their group.
func rate(marks []score.Mark, want []int, g Grouping) int {
	total := 0
	for i, m := range marks {
		if g.Group[m] != want[i] {
			continue
		}
		total += 10
		if bonus := 2 - g.Pos[m]; bonus > 0 {
			total += bonus
		}
	}
	return total
}

// validatePattern checks row widths against the target length and row
// values against the number of groups.
func validatePattern(pattern [][]int, width, groups int) error {
	if len(pattern) == 0 {
		return fmt.Errorf("%w: no rounds", ErrInvalidPattern)
	}
	for r, row := range pattern {
		if len(row) != width {
			return fmt.Errorf("%w: round %d has %d columns, want %d", ErrInvalidPattern, r, len(row), width)
		}
		for c, v := range row {
			if v < 0 || v >= groups {
				return fmt.Errorf("%w: round %d column %d: group index %d out of range 0-%d", ErrInvalidPattern, r, c, v, groups-1)
			}
		}
	}
	return nil
}

func rowsEqual(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
