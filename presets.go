package wordraw

import "sort"

// Named desired-pattern boards, usable in place of a rendered message.
// Values are group indices under the conventional foreground=1,
// background=0 assignment.
var presets = map[string]Pattern{
	// The classic heart board across six rounds.
	"heart": {
		{0, 1, 0, 1, 0},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{0, 1, 1, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
	},
}

// Preset returns a copy of the named pattern board, or false when no
// preset with that name exists.
func Preset(name string) (Pattern, bool) {
	p, ok := presets[name]
	if !ok {
		return nil, false
	}
	out := make(Pattern, len(p))
	for i, row := range p {
		out[i] = append([]int(nil), row...)
	}
	return out, true
}

// PresetNames returns the available preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
