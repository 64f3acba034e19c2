package phonology

import (
	"strings"

	"github.com/heartmarshall/rushin/internal/domain"
)

// BuildWordRecord analyzes a normalized token. Stress fields stay nil when the
// token carries no stress mark.
func BuildWordRecord(token string) domain.WordRecord {
	syllables, n := SplitSyllables(token)
	rec := domain.WordRecord{
		Text:          token,
		LetterCount:   Count(token, domain.Alphabet),
		VowelCount:    Count(token, domain.Vowels),
		Syllables:     syllables,
		SyllableCount: n,
	}

	stressed, markIndex, ok := LocateStress(token)
	if !ok {
		return rec
	}
	rec.StressedVowel = domain.StrPtr(stressed)
	rec.StressMarkIndex = domain.IntPtr(markIndex)

	_, ordinal := CountMembers(token, domain.Vowels, CountOptions{Stop: stressed})
	rec.StressVowelOrdinal = domain.IntPtr(ordinal)

	if syl, idx, ok := FindStressSyllable(syllables, stressed); ok {
		rec.StressSyllable = domain.StrPtr(syl)
		rec.StressSyllableIndex = domain.IntPtr(idx)
	}

	before, after, _ := strings.Cut(token, stressed)
	rec.PreStressConsonants = domain.StrPtr(TrailingRun(before, domain.Consonants))
	rec.PostStressConsonants = domain.StrPtr(LeadingRun(after, domain.Consonants))

	return rec
}

// NewSyllableOccurrence describes a single sighting of syllable as it appears
// inside a word, stress mark included. The record is keyed by the syllable's
// letters with the mark stripped.
func NewSyllableOccurrence(syllable string) domain.SyllableRecord {
	rec := domain.SyllableRecord{
		Text:            domain.NormalizeText(syllable, false),
		OccurrenceCount: 1,
		LetterCount:     Count(syllable, domain.Alphabet),
	}
	if stressed, markIndex, ok := LocateStress(syllable); ok {
		rec.StressedOccurrenceCount = 1
		rec.StressedVowel = domain.StrPtr(stressed)
		rec.StressMarkIndex = domain.IntPtr(markIndex)
	}
	return rec
}
