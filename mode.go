package wordraw

import (
	"errors"
	"fmt"
	"strings"
)

// Mode groups the three classification labels into an ordered list of
// pattern groups. A desired pattern stores group indices rather than
// labels, so a mode controls how the 3-way classification is compressed
// into the visual categories of a board.
//
// Mode strings have the form "group1/group2/.../groupN" where each group
// is a concatenation of label characters:
//   - 'x' gray
//   - 'y' yellow
//   - 'g' green
//
// For example "x/gy" puts gray alone in group 0 and green and yellow
// together in group 1, so a two-tone board distinguishes "miss" squares
// from "any hit" squares. Every label must appear in exactly one group.
type Mode struct {
	groups []string
	group  [3]int // group index by label
	pos    [3]int // position within the group by label
}

// ErrInvalidMode is returned when a mode string is malformed: a label
// appears more than once, a label is missing from all groups, a group is
// empty, or a character is not one of x, y, g.
var ErrInvalidMode = errors.New("invalid mode")

// ParseMode parses a mode string such as "x/gy" or "x/y/g".
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return Mode{}, fmt.Errorf("%w: empty mode string", ErrInvalidMode)
	}

	m := Mode{groups: strings.Split(s, "/")}
	var seen [3]bool

	for gi, group := range m.groups {
		if group == "" {
			return Mode{}, fmt.Errorf("%w: empty group in %q", ErrInvalidMode, s)
		}
		for pi, c := range group {
			l, ok := labelForRune(c)
			if !ok {
				return Mode{}, fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidMode, c, s)
			}
			if seen[l] {
				return Mode{}, fmt.Errorf("%w: label %q appears more than once in %q", ErrInvalidMode, c, s)
			}
			seen[l] = true
			m.group[l] = gi
			m.pos[l] = pi
		}
	}

	for l, ok := range seen {
		if !ok {
			return Mode{}, fmt.Errorf("%w: label %q missing from %q", ErrInvalidMode, Label(l).Rune(), s)
		}
	}
	return m, nil
}

// labelForRune maps a mode character to its label.
func labelForRune(c rune) (Label, bool) {
	switch c {
	case 'x':
		return Gray, true
	case 'y':
		return Yellow, true
	case 'g':
		return Green, true
	}
	return 0, false
}

// Group returns the group index the label belongs to.
func (m Mode) Group(l Label) int {
	return m.group[l]
}

// Pos returns the label's position within its group. Earlier positions
// earn a slightly higher rating bonus during search.
func (m Mode) Pos(l Label) int {
	return m.pos[l]
}

// NumGroups returns the number of groups in the mode.
func (m Mode) NumGroups() int {
	return len(m.groups)
}

// LabelAt returns the label at the given group and position, or false if
// out of range. LabelAt(g, 0) is the representative label of group g.
func (m Mode) LabelAt(group, pos int) (Label, bool) {
	if group < 0 || group >= len(m.groups) {
		return 0, false
	}
	runes := []rune(m.groups[group])
	if pos < 0 || pos >= len(runes) {
		return 0, false
	}
	l, ok := labelForRune(runes[pos])
	return l, ok
}

// String returns the mode in its source notation, e.g. "x/gy".
func (m Mode) String() string {
	return strings.Join(m.groups, "/")
}

// IsZero reports whether the mode is the uninitialized zero value.
func (m Mode) IsZero() bool {
	return len(m.groups) == 0
}
