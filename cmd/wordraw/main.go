// Command wordraw searches a word list for guesses that draw a desired
// board of colored squares against a target word.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/wordraw/wordraw"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		target        string
		message       string
		presetName    string
		wordlistPath  string
		fontPath      string
		modeFlags     []string
		top           int
		fallbackGlyph string
		allowEarlyWin bool
		logLevel      string
		showVersion   bool
		showHelp      bool
	)

	pflag.StringVarP(&target, "target", "t", "thick", "Target word the guesses are classified against")
	pflag.StringVarP(&message, "message", "m", "", "Message rendered through the bitmap font, one board per character")
	pflag.StringVarP(&presetName, "pattern", "p", "heart", "Named pattern preset used when no message is given")
	pflag.StringVarP(&wordlistPath, "wordlist", "w", "", "Path to newline-separated word list (default: embedded list)")
	pflag.StringVarP(&fontPath, "font", "f", "", "Path to font table file or font name (default: built-in font)")
	pflag.StringSliceVar(&modeFlags, "modes", []string{"x/gy", "gy/x", "y/gx", "x/yg", "yg/x"}, "Mode strings to try, ranked by total rating")
	pflag.IntVar(&top, "top", 1, "Candidate words to show per round")
	pflag.StringVarP(&fallbackGlyph, "unknown-rune", "u", "", "Fallback glyph for message characters missing from the font")
	pflag.BoolVar(&allowEarlyWin, "allow-early-win", false, "Permit the target word itself before the final round")
	pflag.StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (default $LOG_LEVEL or info)")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	pflag.Parse()

	if showHelp {
		printHelp()
		return 0
	}
	if showVersion {
		fmt.Printf("wordraw version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	_ = godotenv.Load()
	setupLogging(logLevel)

	target = strings.ToLower(strings.TrimSpace(target))

	list, err := loadWords(wordlistPath, len(target))
	if err != nil {
		log.Error().Err(err).Msg("failed to load word list")
		return 1
	}
	log.Debug().Int("words", len(list)).Str("target", target).Msg("word list loaded")

	patterns, err := buildPatterns(message, presetName, fontPath, fallbackGlyph)
	if err != nil {
		log.Error().Err(err).Msg("failed to build desired patterns")
		return 1
	}

	modes := make([]wordraw.Mode, 0, len(modeFlags))
	for _, s := range modeFlags {
		m, err := wordraw.ParseMode(s)
		if err != nil {
			log.Error().Err(err).Msg("failed to parse mode")
			return 1
		}
		modes = append(modes, m)
	}

	runs, err := wordraw.SearchModes(list, target, patterns, modes,
		wordraw.WithAllowEarlyWin(allowEarlyWin))
	if err != nil {
		log.Error().Err(err).Msg("search failed")
		return 1
	}

	printResults(os.Stdout, runs, patterns, target, top)
	return 0
}

// setupLogging configures the global zerolog logger for console output.
// The level comes from the flag, then LOG_LEVEL, then defaults to info.
func setupLogging(flagLevel string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level := flagLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// loadWords loads the word list from a file, or falls back to the
// embedded default list when no path is given.
func loadWords(path string, length int) ([]string, error) {
	if path == "" {
		if length != 5 {
			return nil, fmt.Errorf("embedded word list is 5 letters; pass --wordlist for %d-letter targets", length)
		}
		log.Debug().Msg("using embedded word list")
		return wordraw.DefaultWords(), nil
	}
	return wordraw.LoadWordsFile(path, length)
}

// buildPatterns produces the desired boards either by rendering the
// message through a font or by looking up a named preset.
func buildPatterns(message, presetName, fontPath, fallbackGlyph string) ([]wordraw.Pattern, error) {
	if message == "" {
		p, ok := wordraw.Preset(presetName)
		if !ok {
			return nil, fmt.Errorf("unknown pattern preset %q (available: %s)",
				presetName, strings.Join(wordraw.PresetNames(), ", "))
		}
		return []wordraw.Pattern{p}, nil
	}

	font, err := loadFont(fontPath)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("font", font.Name).Int("height", font.Height).Int("width", font.Width).Msg("font loaded")

	var opts []wordraw.Option
	if fallbackGlyph != "" {
		r, err := parseFallbackRune(fallbackGlyph)
		if err != nil {
			return nil, err
		}
		opts = append(opts, wordraw.WithUnknownRune(r))
	}
	return wordraw.Render(font, message, opts...)
}

// loadFont opens a font table file, or the built-in font when no path is
// given.
func loadFont(fontPath string) (*wordraw.Font, error) {
	if fontPath == "" {
		return wordraw.LoadFontFS(wordraw.Fonts, wordraw.DefaultFontPath)
	}

	resolved := resolveFontPath(fontPath)
	f, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open font file: %w", err)
	}
	defer f.Close()

	font, err := wordraw.ParseFont(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", resolved, err)
	}
	if font.Name == "" {
		font.Name = strings.TrimSuffix(filepath.Base(resolved), filepath.Ext(resolved))
	}
	return font, nil
}

// resolveFontPath resolves a font argument from either a full path or
// just a font name.
func resolveFontPath(fontPath string) string {
	if filepath.Ext(fontPath) == ".yaml" || filepath.Ext(fontPath) == ".yml" {
		return fontPath
	}
	if _, err := os.Stat(fontPath); err == nil {
		return fontPath
	}
	withExt := fontPath + ".yaml"
	if _, err := os.Stat(withExt); err == nil {
		return withExt
	}
	inFonts := filepath.Join("fonts", fontPath+".yaml")
	if _, err := os.Stat(inFonts); err == nil {
		return inFonts
	}
	// Default to the original argument; opening will produce the error.
	return fontPath
}

// parseFallbackRune parses the --unknown-rune value, which must be a
// single character.
func parseFallbackRune(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("unknown-rune must be a single character, got %q", s)
	}
	return runes[0], nil
}

// printResults writes the per-mode, per-board, per-round outcome.
// Desired rows are shown next to the row the selected word actually
// produces; rounds without an exact match fall back to the closest
// candidate by rating.
func printResults(w io.Writer, runs []wordraw.ModeSearch, patterns []wordraw.Pattern, target string, top int) {
	for _, run := range runs {
		fmt.Fprintf(w, "mode %s (total rating %d)\n", run.Mode, run.Total)
		for bi, res := range run.Results {
			if len(run.Results) > 1 {
				fmt.Fprintf(w, " board %d:\n", bi+1)
			}
			for ri, round := range res.Rounds {
				wantSq, wantLt, _ := wordraw.FormatPatternRow(patterns[bi][ri], run.Mode)

				word := round.Word
				note := ""
				if word == "" && len(round.Candidates) > 0 {
					word = round.Candidates[0]
					note = " (closest)"
				}
				if word == "" {
					fmt.Fprintf(w, "  round %d: %s (%s)  no match\n", ri+1, wantSq, wantLt)
					continue
				}

				c, err := wordraw.Classify(word, target)
				if err != nil {
					fmt.Fprintf(w, "  round %d: %s (%s)  %s%s  rating %d\n",
						ri+1, wantSq, wantLt, word, note, round.Rating)
					continue
				}
				gotSq, gotLt, _ := wordraw.FormatClassification(c)
				fmt.Fprintf(w, "  round %d: %s (%s) -> %s (%s)  %s%s  rating %d%s\n",
					ri+1, wantSq, wantLt, gotSq, gotLt, word, note, round.Rating,
					candidateList(round.Candidates, top))
			}
		}
		fmt.Fprintln(w)
	}
}

// candidateList formats up to top extra candidates for display, or an
// empty string when there is nothing beyond the shown word.
func candidateList(candidates []string, top int) string {
	if top <= 1 || len(candidates) <= 1 {
		return ""
	}
	if top > len(candidates) {
		top = len(candidates)
	}
	return "  candidates: " + strings.Join(candidates[:top], ", ")
}

func printHelp() {
	fmt.Println("wordraw - find word-game guesses that draw pictures")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  wordraw [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	pflag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  wordraw --target thick                      # draw the heart preset")
	fmt.Println("  wordraw --target thick --message hi         # draw 'hi' via the built-in font")
	fmt.Println("  wordraw -t crane -w words.txt --modes x/gy  # custom list, single mode")
}
