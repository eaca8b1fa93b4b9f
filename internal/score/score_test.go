package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		guess  string
		want   []Mark
	}{
		{
			name:   "all hits",
			answer: "crane",
			guess:  "crane",
			want:   []Mark{Hit, Hit, Hit, Hit, Hit},
		},
		{
			name:   "all misses",
			answer: "thick",
			guess:  "moons",
			want:   []Mark{Miss, Miss, Miss, Miss, Miss},
		},
		{
			name:   "repeated guess letters bounded by answer counts",
			answer: "sheep",
			guess:  "epees",
			want:   []Mark{Miss, Present, Hit, Hit, Present},
		},
		{
			name:   "excess duplicates miss",
			answer: "sheep",
			guess:  "eeeee",
			want:   []Mark{Miss, Miss, Hit, Hit, Miss},
		},
		{
			name:   "present without hits",
			answer: "crane",
			guess:  "nacre",
			want:   []Mark{Present, Present, Present, Present, Hit},
		},
		{
			name:   "hit consumes the only occurrence",
			answer: "robin",
			guess:  "rooms",
			want:   []Mark{Hit, Hit, Miss, Miss, Miss},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.answer, tt.guess)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreErrors(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		guess  string
	}{
		{"length mismatch", "crane", "cran"},
		{"empty answer", "", ""},
		{"uppercase answer", "Crane", "crane"},
		{"uppercase guess", "crane", "CRANE"},
		{"digits in guess", "crane", "cr4ne"},
		{"unicode letters", "crane", "crané"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Score(tt.answer, tt.guess)
			require.ErrorIs(t, err, ErrInvalidWord)
		})
	}
}

func TestScoreNeverOvercounts(t *testing.T) {
	answers := []string{"sheep", "moons", "lapel", "union", "geese"}
	guesses := []string{"epees", "eeeee", "alarm", "onion", "sheep", "geese"}

	for _, answer := range answers {
		for _, guess := range guesses {
			if len(guess) != len(answer) {
				continue
			}
			marks, err := Score(answer, guess)
			require.NoError(t, err)

			var scored, have [26]int
			for i := range answer {
				have[answer[i]-'a']++
			}
			for i, m := range marks {
				if m != Miss {
					scored[guess[i]-'a']++
				}
			}
			for letter := 0; letter < 26; letter++ {
				assert.LessOrEqualf(t, scored[letter], have[letter],
					"Score(%q, %q): letter %c over-counted", answer, guess, 'a'+letter)
			}
		}
	}
}

func TestIsAlpha(t *testing.T) {
	assert.True(t, IsAlpha("crane"))
	assert.True(t, IsAlpha(""))
	assert.False(t, IsAlpha("Crane"))
	assert.False(t, IsAlpha("cr4ne"))
	assert.False(t, IsAlpha("cran e"))
}
