package assistant

import (
	"strings"

	"github.com/barrovivo/backend/internal/domain/catalog"
)

// Normalize lowercases, trims, and strips diacritics from user text
func Normalize(s string) string {
	return strings.ToLower(catalog.StripDiacritics(strings.TrimSpace(s)))
}

// Tokenize splits normalized text into alphanumeric words
func Tokenize(s string) []string {
	normalized := Normalize(s)

	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
