// Package font parses bitmap font tables.
//
// A font table is a YAML document mapping single-character keys to
// fixed-size glyph grids. Rows are strings where '#' or '1' mark on
// cells and '.', ' ' or '0' mark off cells:
//
//	name: wordraw
//	height: 6
//	width: 5
//	glyphs:
//	  "a":
//	    - ".###."
//	    - "#...#"
//	    - "#####"
//	    - "#...#"
//	    - "#...#"
//	    - "....."
//
// Glyph rows shorter than the declared width are padded with off cells
// and longer rows are trimmed; missing trailing rows are padded blank.
package font

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Limits on declared glyph geometry. Boards are a handful of cells; a
// header outside these bounds is a malformed file, not a big font.
const (
	maxHeight = 64
	maxWidth  = 64
)

// Font is a parsed bitmap font.
type Font struct {
	// Glyphs maps runes to height×width cell grids
	Glyphs map[rune][][]bool

	// Name is the font name declared in the file (may be empty)
	Name string

	// Height is the number of rows per glyph
	Height int

	// Width is the number of columns per glyph
	Width int
}

var (
	// ErrBadFormat is returned when a font table file is malformed.
	ErrBadFormat = errors.New("bad font format")

	// ErrUnknownGlyph is returned when a character has no font entry.
	ErrUnknownGlyph = errors.New("unknown glyph")
)

// fontFile is the YAML document layout.
type fontFile struct {
	Name   string              `yaml:"name"`
	Height int                 `yaml:"height"`
	Width  int                 `yaml:"width"`
	Glyphs map[string][]string `yaml:"glyphs"`
}

// Parse reads a font table from the provided reader.
func Parse(r io.Reader) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	var ff fontFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	if ff.Height <= 0 || ff.Height > maxHeight {
		return nil, fmt.Errorf("%w: height %d out of range 1-%d", ErrBadFormat, ff.Height, maxHeight)
	}
	if ff.Width <= 0 || ff.Width > maxWidth {
		return nil, fmt.Errorf("%w: width %d out of range 1-%d", ErrBadFormat, ff.Width, maxWidth)
	}
	if len(ff.Glyphs) == 0 {
		return nil, fmt.Errorf("%w: no glyphs", ErrBadFormat)
	}

	f := &Font{
		Glyphs: make(map[rune][][]bool, len(ff.Glyphs)),
		Name:   ff.Name,
		Height: ff.Height,
		Width:  ff.Width,
	}

	for key, rows := range ff.Glyphs {
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			return nil, fmt.Errorf("%w: glyph key %q must be a single character", ErrBadFormat, key)
		}
		grid, err := parseGrid(rows, ff.Height, ff.Width)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", key, err)
		}
		f.Glyphs[r] = grid
	}
	return f, nil
}

// parseGrid converts row strings into a height×width cell grid.
func parseGrid(rows []string, height, width int) ([][]bool, error) {
	if len(rows) > height {
		return nil, fmt.Errorf("%w: %d rows exceed font height %d", ErrBadFormat, len(rows), height)
	}
	grid := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]bool, width)
		if i >= len(rows) {
			continue
		}
		for j, c := range []rune(rows[i]) {
			if j >= width {
				break
			}
			on, err := parseCell(c)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			grid[i][j] = on
		}
	}
	return grid, nil
}

// parseCell maps a row character to a cell value.
func parseCell(c rune) (bool, error) {
	switch c {
	case '#', '1':
		return true, nil
	case '.', ' ', '0':
		return false, nil
	}
	return false, fmt.Errorf("%w: unexpected cell character %q", ErrBadFormat, c)
}
