package store

import (
	"strings"

	"github.com/citypulse/app-announcements/internal/utils"
)

// Tokenize turns free text into index tokens. The same rule is applied to
// announcement text at insert time and to search terms at query time, so a
// term always matches the announcements it was indexed from:
//
//  1. fold diacritics and lower-case,
//  2. split on spaces,
//  3. strip non-alphanumeric runes from each token,
//  4. discard tokens that end up empty.
//
// No stemming and no stop-word removal.
func Tokenize(text string) []string {
	folded := utils.FoldText(text)

	parts := strings.Split(folded, " ")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := utils.StripToken(part)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// indexText is the text an announcement is indexed under: title plus the
// plain-text rendering of the (possibly markdown) description.
func indexText(title, description string) string {
	return title + " " + utils.StripMarkdown(description)
}
