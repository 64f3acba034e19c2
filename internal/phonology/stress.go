package phonology

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/rushin/internal/domain"
)

// LocateStress finds the first stress mark in word and returns the stressed
// vowel (the preceding character followed by the mark) and the 0-based
// character index of the mark. ok is false when word has no stress mark.
//
// A mark at index 0 has nothing to modify; the returned substring is then the
// mark alone.
func LocateStress(word string) (stressed string, markIndex int, ok bool) {
	var prev rune
	hasPrev := false
	i := 0
	for _, r := range word {
		if r == domain.StressMark {
			if !hasPrev {
				return string(r), i, true
			}
			return string([]rune{prev, r}), i, true
		}
		prev, hasPrev = r, true
		i++
	}
	return "", 0, false
}

// HasStressedVowel reports whether the first stress mark in word follows a
// vowel. Only such tokens make it into the word table.
func HasStressedVowel(word string) bool {
	stressed, _, ok := LocateStress(word)
	if !ok {
		return false
	}
	r, _ := utf8.DecodeRuneInString(stressed)
	return domain.IsVowel(r)
}

// FindStressSyllable returns the first syllable containing stressedVowel and
// its 1-based position. syllables must still carry the stress mark.
func FindStressSyllable(syllables []string, stressedVowel string) (syllable string, index int, ok bool) {
	if stressedVowel == "" {
		return "", 0, false
	}
	for i, s := range syllables {
		if strings.Contains(s, stressedVowel) {
			return s, i + 1, true
		}
	}
	return "", 0, false
}
