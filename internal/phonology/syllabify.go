package phonology

import (
	"github.com/heartmarshall/rushin/internal/domain"
)

// SplitSyllables splits word into syllables by the rule of ascending
// sonority: every syllable gets one vowel, and the consonants between two
// vowels go to the following syllable unless a sonorant in the middle of the
// cluster closes the preceding one.
//
// The syllables joined in order give back word, stress mark included. A word
// without vowels comes back as a single syllable; an empty word yields none.
func SplitSyllables(word string) ([]string, int) {
	initial := splitAfterVowels([]rune(word))
	if len(initial) == 0 {
		return []string{}, 0
	}

	syllables := make([]string, 0, len(initial))
	syllables = append(syllables, string(initial[0]))
	for _, syl := range initial[1:] {
		cut := codaLength(syl)
		syllables[len(syllables)-1] += string(syl[:cut])
		syllables = append(syllables, string(syl[cut:]))
	}
	return syllables, len(syllables)
}

// splitAfterVowels closes a syllable after every vowel (after "vowel + mark"
// when the vowel is stressed). Consonants after the last vowel join the last
// syllable.
func splitAfterVowels(runes []rune) [][]rune {
	var (
		syllables [][]rune
		buf       []rune
	)
	for i := 0; i < len(runes); i++ {
		buf = append(buf, runes[i])
		if !domain.IsVowel(runes[i]) {
			continue
		}
		if next, ok := runeAt(runes, i+1); ok && next == domain.StressMark {
			buf = append(buf, next)
			i++
		}
		syllables = append(syllables, buf)
		buf = nil
	}

	if len(buf) > 0 {
		if len(syllables) == 0 {
			return [][]rune{buf}
		}
		last := len(syllables) - 1
		syllables[last] = append(syllables[last], buf...)
	}
	return syllables
}

// codaLength returns how many leading characters of syl move to the end of
// the preceding syllable.
//
// Obstruents are held back until a sonorant that does not directly precede
// the vowel shows up; that sonorant and everything before it become coda.
// A sonorant followed by ь or by itself forms one unit when another consonant
// follows the pair. A sonorant right before the vowel is the onset and ends
// the scan.
func codaLength(syl []rune) int {
	cut := 0
	for i := 0; i < len(syl); i++ {
		r := syl[i]
		if domain.IsVowel(r) {
			break
		}
		if !domain.IsSonorant(r) {
			continue
		}

		next, ok := runeAt(syl, i+1)
		if ok && domain.IsVowel(next) {
			break
		}
		if ok && pairsWith(r, next) {
			if after, ok := runeAt(syl, i+2); !ok || !domain.IsVowel(after) {
				cut = i + 2
				i++
			}
			continue
		}
		cut = i + 1
	}
	return cut
}

// pairsWith reports whether sonorant r and next form a two-character unit:
// "ль", "нн" and the like. й never pairs.
func pairsWith(r, next rune) bool {
	if r == 'й' || r == 'Й' {
		return false
	}
	return next == 'ь' || next == 'Ь' || next == r
}

func runeAt(runes []rune, i int) (rune, bool) {
	if i < 0 || i >= len(runes) {
		return 0, false
	}
	return runes[i], true
}
