package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldText removes diacritics and lower-cases text so that accented and
// plain spellings index and match identically.
// Example: "Saúde" -> "saude".
func FoldText(text string) string {
	if text == "" {
		return text
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}

	return strings.ToLower(folded)
}

// StripToken removes every non-alphanumeric rune from a token. Tokens that
// become empty are discarded by the caller.
func StripToken(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
