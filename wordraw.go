// Package wordraw finds word-game guesses that draw pictures.
//
// Given a target word, a word list and a desired board of colored
// squares, wordraw searches for a guess per round whose letter
// classification against the target, compressed through a Mode's label
// groups, reproduces the desired row. Boards come from named presets or
// from a message rendered through a bitmap font.
package wordraw

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/wordraw/wordraw/internal/font"
	"github.com/wordraw/wordraw/internal/score"
	"github.com/wordraw/wordraw/internal/search"
	"github.com/wordraw/wordraw/internal/words"
)

// ErrInvalidPattern is returned when a desired pattern board does not
// fit the target word or the mode.
var ErrInvalidPattern = search.ErrInvalidPattern

// ParseFont reads a bitmap font table from the provided reader and
// returns a Font instance. The returned Font is immutable.
func ParseFont(r io.Reader) (*Font, error) {
	pf, err := font.Parse(r)
	if err != nil {
		return nil, err
	}
	return convertFont(pf), nil
}

// LoadFontFS loads a font table from a filesystem at the specified path.
// Path traversal (e.g. "../") is not allowed. When the font file does
// not declare a name, the file name without extension is used.
//
// Example with the embedded default font:
//
//	f, err := wordraw.LoadFontFS(wordraw.Fonts, wordraw.DefaultFontPath)
func LoadFontFS(fsys fs.FS, fontPath string) (*Font, error) {
	if fsys == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}

	clean, err := cleanFSPath(fontPath)
	if err != nil {
		return nil, err
	}

	file, err := fsys.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to open font file: %w", err)
	}
	defer file.Close()

	f, err := ParseFont(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", clean, err)
	}

	if f.Name == "" {
		f.Name = strings.TrimSuffix(path.Base(clean), path.Ext(clean))
	}
	return f, nil
}

// cleanFSPath validates and cleans a path for use with fs.FS. It
// enforces fs.ValidPath rules and rejects directory traversal.
func cleanFSPath(p string) (string, error) {
	if p == "" {
		return "", errors.New("path cannot be empty")
	}
	// fs.FS disallows leading slash and uses '/' only
	if strings.HasPrefix(p, "/") {
		return "", errors.New("absolute paths not allowed")
	}
	if strings.ContainsRune(p, '\\') {
		return "", errors.New("backslashes not allowed in fs paths")
	}
	if !fs.ValidPath(p) {
		return "", fmt.Errorf("invalid fs path: %s", p)
	}
	clean := path.Clean(p)
	if clean == "." || strings.HasPrefix(clean, "../") {
		return "", errors.New("path traversal not allowed")
	}
	return clean, nil
}

// convertFont converts an internal font.Font to the public Font type.
// The glyph grids are shared; neither side mutates them after parsing.
func convertFont(pf *font.Font) *Font {
	glyphs := make(map[rune]Glyph, len(pf.Glyphs))
	for r, grid := range pf.Glyphs {
		glyphs[r] = Glyph(grid)
	}
	return &Font{
		glyphs: glyphs,
		Name:   pf.Name,
		Height: pf.Height,
		Width:  pf.Width,
	}
}

// LoadWords reads a newline-separated word list, keeping only words of
// the given length. See the words package for filtering rules.
func LoadWords(r io.Reader, length int) ([]string, error) {
	return words.Load(r, length)
}

// LoadWordsFile loads a word list from a file.
func LoadWordsFile(path string, length int) ([]string, error) {
	return words.LoadFile(path, length)
}

// DefaultWords returns the small embedded word list.
func DefaultWords() []string {
	return words.Default()
}

// Classify compares guess against target and returns the per-position
// classification. Both words must be equal-length lowercase a-z.
//
// The classification uses the standard two-pass algorithm: exact
// positions go Green first, then remaining letter counts bound the
// Yellows, so repeated letters are never over-counted.
func Classify(guess, target string) (Classification, error) {
	marks, err := score.Score(target, guess)
	if err != nil {
		return nil, err
	}
	c := make(Classification, len(marks))
	for i, m := range marks {
		c[i] = Label(m)
	}
	return c, nil
}

// Render converts a message into desired pattern boards, one board per
// message character. The message is lowercased first. On-cells map to
// the foreground group index and off-cells to the background group
// index (see WithGroups).
//
// A character without a glyph fails with ErrUnknownGlyph unless a
// fallback is configured with WithUnknownRune.
func Render(f *Font, message string, opts ...Option) ([]Pattern, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil font", ErrBadFontFormat)
	}
	if message == "" {
		return nil, fmt.Errorf("%w: empty message", ErrUnknownGlyph)
	}
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	var boards []Pattern
	for _, r := range strings.ToLower(message) {
		g, ok := f.Glyph(r)
		if !ok && options.unknownRune != nil {
			g, ok = f.Glyph(*options.unknownRune)
		}
		if !ok {
			return nil, fmt.Errorf("%w: no glyph for %q in font %s", ErrUnknownGlyph, r, f.Name)
		}
		boards = append(boards, glyphBoard(g, options.foreground, options.background))
	}
	return boards, nil
}

// glyphBoard maps a glyph's cells onto group indices.
func glyphBoard(g Glyph, foreground, background int) Pattern {
	board := make(Pattern, len(g))
	for i, row := range g {
		board[i] = make([]int, len(row))
		for j, on := range row {
			if on {
				board[i][j] = foreground
			} else {
				board[i][j] = background
			}
		}
	}
	return board
}

// Search scans the word list, in order, for one guess per round of the
// desired pattern whose classification against target maps through mode
// to exactly the desired row. The first matching word wins a round; a
// round with no match reports an empty Word, which is a normal result.
// Equal-best near matches by rating are collected alongside.
func Search(list []string, target string, pattern Pattern, mode Mode, opts ...Option) (*Result, error) {
	if mode.IsZero() {
		return nil, fmt.Errorf("%w: zero mode", ErrInvalidMode)
	}
	if !score.IsAlpha(target) || target == "" {
		return nil, fmt.Errorf("%w: target %q must be lowercase a-z", ErrInvalidWord, target)
	}
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	res, err := search.Run(list, pattern, search.Params{
		Target:        target,
		Grouping:      grouping(mode),
		AllowEarlyWin: options.allowEarlyWin,
	})
	if err != nil {
		return nil, err
	}

	out := &Result{Mode: mode, Rounds: make([]Round, len(res.Rounds))}
	for i, r := range res.Rounds {
		out.Rounds[i] = Round{Word: r.Word, Candidates: r.Candidates, Rating: r.Rating}
	}
	return out, nil
}

// SearchModes runs Search for every mode over every desired pattern
// board and ranks the modes by total rating, best first. The ordering
// is stable: modes with equal totals keep their input order.
func SearchModes(list []string, target string, patterns []Pattern, modes []Mode, opts ...Option) ([]ModeSearch, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: no pattern boards", ErrInvalidPattern)
	}
	if len(modes) == 0 {
		return nil, fmt.Errorf("%w: no modes", ErrInvalidMode)
	}

	runs := make([]ModeSearch, 0, len(modes))
	for _, mode := range modes {
		run := ModeSearch{Mode: mode}
		for _, pattern := range patterns {
			res, err := Search(list, target, pattern, mode, opts...)
			if err != nil {
				return nil, err
			}
			for _, round := range res.Rounds {
				run.Total += round.Rating
			}
			run.Results = append(run.Results, res)
		}
		runs = append(runs, run)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Total > runs[j].Total
	})
	return runs, nil
}

// grouping flattens a Mode into the lookup tables the search uses.
// Mark and Label share integer values, so the arrays index directly.
func grouping(m Mode) search.Grouping {
	return search.Grouping{Group: m.group, Pos: m.pos, N: m.NumGroups()}
}
