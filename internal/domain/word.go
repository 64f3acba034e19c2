package domain

// WordRecord is the analysis of one unique stressed token.
// Joining Syllables reproduces Text exactly, stress mark included.
// Stress-related fields are nil when the token carries no stress mark.
type WordRecord struct {
	Text            string   `json:"text"`
	StressedVowel   *string  `json:"stressed_vowel,omitempty"`
	StressMarkIndex *int     `json:"stress_mark_index,omitempty"`
	LetterCount     int      `json:"letter_count"`
	VowelCount      int      `json:"vowel_count"`
	Syllables       []string `json:"syllables"`
	SyllableCount   int      `json:"syllable_count"`

	StressVowelOrdinal   *int    `json:"stress_vowel_ordinal,omitempty"`
	StressSyllable       *string `json:"stress_syllable,omitempty"`
	StressSyllableIndex  *int    `json:"stress_syllable_index,omitempty"`
	PreStressConsonants  *string `json:"pre_stress_consonants,omitempty"`
	PostStressConsonants *string `json:"post_stress_consonants,omitempty"`
}

// IsStressed reports whether the word carries a stress mark.
func (w WordRecord) IsStressed() bool {
	return w.StressedVowel != nil
}
