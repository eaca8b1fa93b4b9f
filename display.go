package wordraw

import "strings"

// Display symbols per label: colored square, letter, digit.
var (
	squareForLabel = map[Label]string{Gray: "⬜", Yellow: "🟨", Green: "🟩"}
	letterForLabel = map[Label]string{Gray: "X", Yellow: "Y", Green: "G"}
	digitForLabel  = map[Label]string{Gray: "0", Yellow: "1", Green: "2"}
)

// FormatClassification renders a classification row three ways: colored
// squares, letters (X/Y/G) and digits (0/1/2).
func FormatClassification(c Classification) (squares, letters, digits string) {
	var sq, lt, dg strings.Builder
	for _, l := range c {
		sq.WriteString(squareForLabel[l])
		lt.WriteString(letterForLabel[l])
		dg.WriteString(digitForLabel[l])
	}
	return sq.String(), lt.String(), dg.String()
}

// FormatPatternRow renders a desired row of group indices using each
// group's representative label (the first label listed in the group).
// Out-of-range group indices render as "?".
func FormatPatternRow(row []int, mode Mode) (squares, letters, digits string) {
	var sq, lt, dg strings.Builder
	for _, g := range row {
		l, ok := mode.LabelAt(g, 0)
		if !ok {
			sq.WriteString("?")
			lt.WriteString("?")
			dg.WriteString("?")
			continue
		}
		sq.WriteString(squareForLabel[l])
		lt.WriteString(letterForLabel[l])
		dg.WriteString(digitForLabel[l])
	}
	return sq.String(), lt.String(), dg.String()
}
