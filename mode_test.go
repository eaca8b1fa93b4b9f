package wordraw

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    bool
		wantGroups int
		wantGray   int // expected group index per label when no error
		wantYellow int
		wantGreen  int
	}{
		{
			name:       "three singleton groups",
			input:      "x/y/g",
			wantGroups: 3,
			wantGray:   0,
			wantYellow: 1,
			wantGreen:  2,
		},
		{
			name:       "gray alone, green and yellow together",
			input:      "x/gy",
			wantGroups: 2,
			wantGray:   0,
			wantYellow: 1,
			wantGreen:  1,
		},
		{
			name:       "single group with all labels",
			input:      "xyg",
			wantGroups: 1,
			wantGray:   0,
			wantYellow: 0,
			wantGreen:  0,
		},
		{
			name:       "hits first",
			input:      "gy/x",
			wantGroups: 2,
			wantGray:   1,
			wantYellow: 0,
			wantGreen:  0,
		},
		{
			name:    "repeated label across groups",
			input:   "xy/yg",
			wantErr: true,
		},
		{
			name:    "repeated label within a group",
			input:   "xx/yg",
			wantErr: true,
		},
		{
			name:    "missing label",
			input:   "x/y",
			wantErr: true,
		},
		{
			name:    "empty group",
			input:   "x//yg",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "unexpected character",
			input:   "x/gz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMode(%q) = %v, want error", tt.input, m)
				}
				if !errors.Is(err, ErrInvalidMode) {
					t.Errorf("ParseMode(%q) error = %v, want ErrInvalidMode", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) unexpected error: %v", tt.input, err)
			}
			if got := m.NumGroups(); got != tt.wantGroups {
				t.Errorf("NumGroups() = %d, want %d", got, tt.wantGroups)
			}
			if got := m.Group(Gray); got != tt.wantGray {
				t.Errorf("Group(Gray) = %d, want %d", got, tt.wantGray)
			}
			if got := m.Group(Yellow); got != tt.wantYellow {
				t.Errorf("Group(Yellow) = %d, want %d", got, tt.wantYellow)
			}
			if got := m.Group(Green); got != tt.wantGreen {
				t.Errorf("Group(Green) = %d, want %d", got, tt.wantGreen)
			}
			if got := m.String(); got != tt.input {
				t.Errorf("String() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestModePositions(t *testing.T) {
	m, err := ParseMode("x/gy")
	if err != nil {
		t.Fatalf("ParseMode: %v", err)
	}

	if got := m.Pos(Gray); got != 0 {
		t.Errorf("Pos(Gray) = %d, want 0", got)
	}
	if got := m.Pos(Green); got != 0 {
		t.Errorf("Pos(Green) = %d, want 0", got)
	}
	if got := m.Pos(Yellow); got != 1 {
		t.Errorf("Pos(Yellow) = %d, want 1", got)
	}
}

func TestModeLabelAt(t *testing.T) {
	m, err := ParseMode("x/gy")
	if err != nil {
		t.Fatalf("ParseMode: %v", err)
	}

	tests := []struct {
		name      string
		group     int
		pos       int
		wantLabel Label
		wantOK    bool
	}{
		{"group 0 representative", 0, 0, Gray, true},
		{"group 1 representative", 1, 0, Green, true},
		{"group 1 second label", 1, 1, Yellow, true},
		{"group out of range", 2, 0, 0, false},
		{"pos out of range", 0, 1, 0, false},
		{"negative group", -1, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := m.LabelAt(tt.group, tt.pos)
			if ok != tt.wantOK {
				t.Fatalf("LabelAt(%d, %d) ok = %v, want %v", tt.group, tt.pos, ok, tt.wantOK)
			}
			if ok && l != tt.wantLabel {
				t.Errorf("LabelAt(%d, %d) = %v, want %v", tt.group, tt.pos, l, tt.wantLabel)
			}
		})
	}
}

func TestModeIsZero(t *testing.T) {
	var zero Mode
	if !zero.IsZero() {
		t.Error("zero Mode should report IsZero")
	}
	m, err := ParseMode("x/y/g")
	if err != nil {
		t.Fatalf("ParseMode: %v", err)
	}
	if m.IsZero() {
		t.Error("parsed Mode should not report IsZero")
	}
}
