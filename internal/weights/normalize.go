// Package weights resolves free-text technology and control descriptions into
// comparable 0–10 strength weights.
package weights

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases value, strips diacritics and drops every character
// outside a–z, 0–9, Cyrillic а–я/ё, '#' and '+'.
//
// An empty result must be treated as matching nothing.
func Normalize(value string) string {
	if value == "" {
		return ""
	}

	lowered := strings.ToLower(value)

	// Chains carry per-use state, so one is built per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		decomposed = lowered
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if keepRune(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func keepRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 'а' && r <= 'я':
		return true
	case r == 'ё', r == '#', r == '+':
		return true
	}
	return false
}
