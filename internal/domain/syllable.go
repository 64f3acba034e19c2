package domain

// SyllableRecord aggregates every sighting of one normalized syllable form.
// StressedVowel and StressMarkIndex come from the first stressed sighting.
type SyllableRecord struct {
	Text                    string  `json:"text"`
	OccurrenceCount         int     `json:"occurrence_count"`
	StressedOccurrenceCount int     `json:"stressed_occurrence_count"`
	LetterCount             int     `json:"letter_count"`
	StressedVowel           *string `json:"stressed_vowel,omitempty"`
	StressMarkIndex         *int    `json:"stress_mark_index,omitempty"`
}

// HasStress reports whether any sighting of the syllable was stressed.
func (s SyllableRecord) HasStress() bool {
	return s.StressedVowel != nil
}

// MergeSyllable folds occurrence into existing and returns the result.
// Neither argument is modified. Counts add up; stress info is adopted from
// occurrence only when existing has none. Records with different keys are
// not merged: existing is returned unchanged.
func MergeSyllable(existing, occurrence SyllableRecord) SyllableRecord {
	if existing.Text != occurrence.Text {
		return existing
	}

	merged := existing
	merged.OccurrenceCount += occurrence.OccurrenceCount
	merged.StressedOccurrenceCount += occurrence.StressedOccurrenceCount
	if !merged.HasStress() && occurrence.HasStress() {
		merged.StressedVowel = occurrence.StressedVowel
		merged.StressMarkIndex = occurrence.StressMarkIndex
	}
	return merged
}
