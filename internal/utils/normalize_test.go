package utils

import "testing"

func TestFoldText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Road Closure", "road closure"},
		{"accented", "Saúde", "saude"},
		{"mixed accents", "Soirée Électrique", "soiree electrique"},
		{"already folded", "bridge", "bridge"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FoldText(tt.input); got != tt.want {
				t.Errorf("FoldText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripToken(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"bridge,", "bridge"},
		{"(closed)", "closed"},
		{"n1", "n1"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripToken(tt.input); got != tt.want {
			t.Errorf("StripToken(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
