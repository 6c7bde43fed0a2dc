package utils

import (
	"strings"
	"testing"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bold and emphasis", "The **bridge** is *closed*", "The bridge is closed"},
		{"heading", "# Notice\n\nRoad closed", "Notice\n\nRoad closed"},
		{"link keeps text", "See [the map](https://example.com) here", "See the map here"},
		{"inline code", "run `water-check` daily", "run water-check daily"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkdown(tt.input); got != tt.want {
				t.Errorf("StripMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripMarkdownList(t *testing.T) {
	got := StripMarkdown("- first\n- second")
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("list items lost: %q", got)
	}
	if strings.Contains(got, "- first") {
		t.Errorf("list markers survived: %q", got)
	}
}

func TestExcerpt(t *testing.T) {
	long := "The Oak Street Bridge will be closed for scheduled maintenance work"

	got := Excerpt(long, 30)
	if len(got) > 30+len("…") {
		t.Errorf("excerpt too long: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated excerpt missing ellipsis: %q", got)
	}
	if strings.HasSuffix(strings.TrimSuffix(got, "…"), " ") {
		t.Errorf("excerpt not cut at a word boundary: %q", got)
	}

	if got := Excerpt("short", 30); got != "short" {
		t.Errorf("short text altered: %q", got)
	}
	if got := Excerpt("**bold** text", 0); got != "bold text" {
		t.Errorf("maxLen 0 should return the full plain text, got %q", got)
	}
}
