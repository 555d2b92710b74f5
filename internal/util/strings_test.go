package util

import "testing"

func TestWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "Time", 4},
		{"box drawing is single cell", "┃━│", 3},
		{"accented", "Zoë", 3},
		{"wide runes", "東京", 4},
		{"ansi ignored", "\x1b[1mTime\x1b[0m", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Width(tt.input); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaxWidth(t *testing.T) {
	if got := MaxWidth(4, "ab", "abcdef", "abc"); got != 6 {
		t.Errorf("MaxWidth = %d, want 6", got)
	}
	if got := MaxWidth(11); got != 11 {
		t.Errorf("MaxWidth with no strings = %d, want 11", got)
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string, int) string
		input string
		width int
		want  string
	}{
		{"left pads front", PadLeft, "ab", 5, "   ab"},
		{"right pads back", PadRight, "ab", 5, "ab   "},
		{"center even", Center, "ab", 6, "  ab  "},
		{"center odd extra right", Center, "Time", 7, " Time  "},
		{"too wide unchanged", PadLeft, "abcdef", 3, "abcdef"},
		{"wide runes counted as cells", PadRight, "東京", 6, "東京  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input, tt.width); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
