package wordraw

import (
	"github.com/wordraw/wordraw/internal/font"
	"github.com/wordraw/wordraw/internal/score"
	"github.com/wordraw/wordraw/internal/words"
)

// Label classifies one guessed letter against the target word.
type Label int

const (
	// Gray marks a letter that is absent from the target, or whose
	// occurrences are already fully accounted for by greens and yellows.
	Gray Label = iota

	// Yellow marks a letter present in the target at another position.
	Yellow

	// Green marks a letter at its correct position.
	Green
)

// String returns the lowercase label name.
func (l Label) String() string {
	switch l {
	case Gray:
		return "gray"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	}
	return "invalid"
}

// Rune returns the single-character mode notation for the label:
// 'x' for gray, 'y' for yellow, 'g' for green.
func (l Label) Rune() rune {
	switch l {
	case Gray:
		return 'x'
	case Yellow:
		return 'y'
	case Green:
		return 'g'
	}
	return '?'
}

// Classification is the per-position label row produced by comparing a
// guess against a target word.
type Classification []Label

// Pattern is a desired board of group indices: one row per guess round,
// one column per letter position. Row values index into a Mode's groups.
type Pattern [][]int

// Glyph is a height×width grid of on/off cells for one font character.
// The grid should not be modified by callers.
type Glyph [][]bool

// Font is an immutable bitmap font mapping characters to glyph grids.
//
// Font data is loaded once and never modified, so a Font can be shared
// freely after parsing.
type Font struct {
	// glyphs maps runes to their cell grids (unexported for immutability)
	glyphs map[rune]Glyph

	// Name is the font name, from the font file or the file name
	Name string

	// Height is the number of rows per glyph
	Height int

	// Width is the number of columns per glyph
	Width int
}

// Glyph returns the cell grid for a rune, or false if the font does not
// contain it. The returned grid must not be modified.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	if f == nil || f.glyphs == nil {
		return nil, false
	}
	g, ok := f.glyphs[r]
	return g, ok
}

// Round is the outcome of matching one desired row against the word list.
type Round struct {
	// Word is the first word in list order whose classification row,
	// mapped through the mode, equals the desired row. Empty when no
	// word matches exactly (a normal not-found result, not an error).
	Word string

	// Candidates are the equal-best words for this round by rating,
	// in list order.
	Candidates []string

	// Rating is the score of the candidates: 10 points per position in
	// the desired group plus a 0-2 bonus for earlier positions within
	// the group.
	Rating int
}

// Result holds the per-round outcome of a search under one mode.
type Result struct {
	Mode   Mode
	Rounds []Round
}

// ModeSearch aggregates search results for one mode across several
// desired pattern boards, with the mode's total rating used for ranking.
type ModeSearch struct {
	Mode    Mode
	Total   int
	Results []*Result // one per desired pattern board
}

// Common errors returned by the wordraw package. Errors produced by
// parsing and searching wrap these sentinels; test with errors.Is.
var (
	// ErrInvalidWordList is returned when a word list file is unreadable
	// or contains no words of the required length.
	ErrInvalidWordList = words.ErrInvalidWordList

	// ErrBadFontFormat is returned when a font table file is malformed.
	ErrBadFontFormat = font.ErrBadFormat

	// ErrUnknownGlyph is returned when a message character has no font
	// entry and no fallback rune is configured.
	ErrUnknownGlyph = font.ErrUnknownGlyph

	// ErrInvalidWord is returned when a guess or target word is not a
	// fixed-length lowercase word over a-z.
	ErrInvalidWord = score.ErrInvalidWord
)

// Option configures rendering and search behavior.
type Option func(*options)

type options struct {
	unknownRune   *rune
	foreground    int
	background    int
	allowEarlyWin bool
}

func defaultOptions() *options {
	return &options{foreground: 1, background: 0}
}

// WithUnknownRune sets a fallback rune used when a message character has
// no glyph in the font. Without this option rendering fails with
// ErrUnknownGlyph. The fallback rune itself must exist in the font.
func WithUnknownRune(r rune) Option {
	return func(opts *options) {
		opts.unknownRune = &r
	}
}

// WithGroups sets the pattern group indices that rendered glyph cells
// map to: on-cells become foreground, off-cells become background.
// Defaults are foreground 1, background 0.
func WithGroups(foreground, background int) Option {
	return func(opts *options) {
		opts.foreground = foreground
		opts.background = background
	}
}

// WithAllowEarlyWin permits the target word itself to be suggested
// before the final round. By default the target is withheld until the
// last round so that the resulting game does not end early.
func WithAllowEarlyWin(allow bool) Option {
	return func(opts *options) {
		opts.allowEarlyWin = allow
	}
}
