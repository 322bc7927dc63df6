package textutil

import (
	"strings"
	"unicode"
)

// NormalizeName folds a display name into a loose comparison key:
// lowercased with whitespace and punctuation dropped, so "St. Louis
// Blues" compares equal to "st louis blues".
func NormalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}
