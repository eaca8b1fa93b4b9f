package wordraw

import "testing"

func TestFormatClassification(t *testing.T) {
	tests := []struct {
		name        string
		c           Classification
		wantSquares string
		wantLetters string
		wantDigits  string
	}{
		{
			name:        "mixed row",
			c:           Classification{Gray, Yellow, Green, Green, Yellow},
			wantSquares: "⬜🟨🟩🟩🟨",
			wantLetters: "XYGGY",
			wantDigits:  "01221",
		},
		{
			name:        "all green",
			c:           Classification{Green, Green, Green, Green, Green},
			wantSquares: "🟩🟩🟩🟩🟩",
			wantLetters: "GGGGG",
			wantDigits:  "22222",
		},
		{
			name:        "empty",
			c:           Classification{},
			wantSquares: "",
			wantLetters: "",
			wantDigits:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, lt, dg := FormatClassification(tt.c)
			if sq != tt.wantSquares {
				t.Errorf("squares = %q, want %q", sq, tt.wantSquares)
			}
			if lt != tt.wantLetters {
				t.Errorf("letters = %q, want %q", lt, tt.wantLetters)
			}
			if dg != tt.wantDigits {
				t.Errorf("digits = %q, want %q", dg, tt.wantDigits)
			}
		})
	}
}

func TestFormatPatternRow(t *testing.T) {
	mode, err := ParseMode("x/gy")
	if err != nil {
		t.Fatalf("ParseMode: %v", err)
	}

	// Group representatives: group 0 is gray, group 1 leads with green.
	sq, lt, dg := FormatPatternRow([]int{0, 1, 0, 1, 0}, mode)
	if want := "⬜🟩⬜🟩⬜"; sq != want {
		t.Errorf("squares = %q, want %q", sq, want)
	}
	if want := "XGXGX"; lt != want {
		t.Errorf("letters = %q, want %q", lt, want)
	}
	if want := "02020"; dg != want {
		t.Errorf("digits = %q, want %q", dg, want)
	}

	// Out-of-range group indices render as placeholders.
	sq, lt, dg = FormatPatternRow([]int{0, 7}, mode)
	if want := "⬜?"; sq != want {
		t.Errorf("squares = %q, want %q", sq, want)
	}
	if want := "X?"; lt != want {
		t.Errorf("letters = %q, want %q", lt, want)
	}
	if want := "0?"; dg != want {
		t.Errorf("digits = %q, want %q", dg, want)
	}
}
