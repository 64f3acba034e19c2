package corpusrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/rushin/internal/domain"
)

type runRow struct {
	ID             uuid.UUID `db:"id"`
	Source         string    `db:"source"`
	TotalTokens    int       `db:"total_tokens"`
	StressedTokens int       `db:"stressed_tokens"`
	WordCount      int       `db:"word_count"`
	SyllableCount  int       `db:"syllable_count"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r runRow) toDomain() domain.IngestRun {
	return domain.IngestRun{
		ID:             r.ID,
		Source:         r.Source,
		TotalTokens:    r.TotalTokens,
		StressedTokens: r.StressedTokens,
		WordCount:      r.WordCount,
		SyllableCount:  r.SyllableCount,
		CreatedAt:      r.CreatedAt,
	}
}

type wordRow struct {
	Text                 string   `db:"text"`
	StressedVowel        *string  `db:"stressed_vowel"`
	StressMarkIndex      *int     `db:"stress_mark_index"`
	LetterCount          int      `db:"letter_count"`
	VowelCount           int      `db:"vowel_count"`
	Syllables            []string `db:"syllables"`
	SyllableCount        int      `db:"syllable_count"`
	StressVowelOrdinal   *int     `db:"stress_vowel_ordinal"`
	StressSyllable       *string  `db:"stress_syllable"`
	StressSyllableIndex  *int     `db:"stress_syllable_index"`
	PreStressConsonants  *string  `db:"pre_stress_consonants"`
	PostStressConsonants *string  `db:"post_stress_consonants"`
}

func (r wordRow) toDomain() domain.WordRecord {
	syllables := r.Syllables
	if syllables == nil {
		syllables = []string{}
	}
	return domain.WordRecord{
		Text:                 r.Text,
		StressedVowel:        r.StressedVowel,
		StressMarkIndex:      r.StressMarkIndex,
		LetterCount:          r.LetterCount,
		VowelCount:           r.VowelCount,
		Syllables:            syllables,
		SyllableCount:        r.SyllableCount,
		StressVowelOrdinal:   r.StressVowelOrdinal,
		StressSyllable:       r.StressSyllable,
		StressSyllableIndex:  r.StressSyllableIndex,
		PreStressConsonants:  r.PreStressConsonants,
		PostStressConsonants: r.PostStressConsonants,
	}
}

type syllableRow struct {
	Text                    string  `db:"text"`
	OccurrenceCount         int     `db:"occurrence_count"`
	StressedOccurrenceCount int     `db:"stressed_occurrence_count"`
	LetterCount             int     `db:"letter_count"`
	StressedVowel           *string `db:"stressed_vowel"`
	StressMarkIndex         *int    `db:"stress_mark_index"`
}

func (r syllableRow) toDomain() domain.SyllableRecord {
	return domain.SyllableRecord{
		Text:                    r.Text,
		OccurrenceCount:         r.OccurrenceCount,
		StressedOccurrenceCount: r.StressedOccurrenceCount,
		LetterCount:             r.LetterCount,
		StressedVowel:           r.StressedVowel,
		StressMarkIndex:         r.StressMarkIndex,
	}
}
