package domain

import (
	"strings"
	"unicode"
)

// Normalize splits text on whitespace and reduces every unit to its Russian
// letters, lowercased. With includeStressMark the StressMark is kept in place.
// Units left without any kept character produce no token.
func Normalize(text string, includeStressMark bool) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))

	var b strings.Builder
	for _, field := range fields {
		b.Reset()
		for _, r := range field {
			if IsLetter(r) || (includeStressMark && r == StressMark) {
				b.WriteRune(unicode.ToLower(r))
			}
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
		}
	}
	return tokens
}

// NormalizeText is Normalize with the tokens joined by single spaces.
func NormalizeText(text string, includeStressMark bool) string {
	return strings.Join(Normalize(text, includeStressMark), " ")
}

// StripStressMark removes every StressMark from s and leaves everything else untouched.
func StripStressMark(s string) string {
	if !HasStressMark(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == StressMark {
			return -1
		}
		return r
	}, s)
}

// HasStressMark reports whether s carries at least one StressMark.
func HasStressMark(s string) bool {
	return strings.ContainsRune(s, StressMark)
}
