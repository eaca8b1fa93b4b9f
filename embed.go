package wordraw

import "embed"

// Fonts holds the font tables shipped with wordraw, loadable with
// LoadFontFS. The default font covers a-z, 0-9 and basic punctuation
// with 6×5 glyphs sized for a standard six-round board.
//
//go:embed fonts/*.yaml
var Fonts embed.FS

// DefaultFontPath is the path of the built-in font within Fonts.
const DefaultFontPath = "fonts/wordraw.yaml"
