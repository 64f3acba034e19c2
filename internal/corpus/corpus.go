// Package corpus folds stress-marked text into a word table and a syllable
// table.
//
// Only stressed tokens are informative: a token without a stress mark is
// counted in the stats and otherwise ignored. The first sighting of a token
// creates its word record; every stressed sighting, repeats included, feeds
// the syllable table.
package corpus

import (
	"github.com/heartmarshall/rushin/internal/domain"
	"github.com/heartmarshall/rushin/internal/phonology"
)

// Stats summarizes one aggregation run.
type Stats struct {
	TotalTokens      int `json:"total_tokens"`
	StressedTokens   int `json:"stressed_tokens"`
	UnstressedTokens int `json:"unstressed_tokens"`
	RepeatedTokens   int `json:"repeated_tokens"`
	UniqueWords      int `json:"unique_words"`
	UniqueSyllables  int `json:"unique_syllables"`
}

// Corpus holds the tables of one aggregation run. The zero value is not
// usable; create one with New.
type Corpus struct {
	words         map[string]domain.WordRecord
	syllables     map[string]domain.SyllableRecord
	wordOrder     []string
	syllableOrder []string
	stats         Stats
}

// New returns an empty corpus.
func New() *Corpus {
	return &Corpus{
		words:     make(map[string]domain.WordRecord),
		syllables: make(map[string]domain.SyllableRecord),
	}
}

// Add folds one normalized token into the corpus.
func (c *Corpus) Add(token string) {
	c.add(token, phonology.BuildWordRecord)
}

func (c *Corpus) add(token string, build func(string) domain.WordRecord) {
	c.stats.TotalTokens++

	if rec, ok := c.words[token]; ok {
		c.stats.StressedTokens++
		c.stats.RepeatedTokens++
		c.foldSyllables(rec.Syllables)
		return
	}

	if !phonology.HasStressedVowel(token) {
		c.stats.UnstressedTokens++
		return
	}

	rec := build(token)
	c.stats.StressedTokens++
	c.words[token] = rec
	c.wordOrder = append(c.wordOrder, token)
	c.foldSyllables(rec.Syllables)
}

func (c *Corpus) foldSyllables(syllables []string) {
	for _, s := range syllables {
		occ := phonology.NewSyllableOccurrence(s)
		existing, ok := c.syllables[occ.Text]
		if !ok {
			c.syllables[occ.Text] = occ
			c.syllableOrder = append(c.syllableOrder, occ.Text)
			continue
		}
		c.syllables[occ.Text] = domain.MergeSyllable(existing, occ)
	}
}

// Word returns the record for a token, stress mark included.
func (c *Corpus) Word(text string) (domain.WordRecord, bool) {
	rec, ok := c.words[text]
	return rec, ok
}

// Syllable returns the record for a normalized syllable form.
func (c *Corpus) Syllable(text string) (domain.SyllableRecord, bool) {
	rec, ok := c.syllables[text]
	return rec, ok
}

// Words returns word records in first-sighting order.
func (c *Corpus) Words() []domain.WordRecord {
	out := make([]domain.WordRecord, 0, len(c.wordOrder))
	for _, key := range c.wordOrder {
		out = append(out, c.words[key])
	}
	return out
}

// Syllables returns syllable records in first-sighting order.
func (c *Corpus) Syllables() []domain.SyllableRecord {
	out := make([]domain.SyllableRecord, 0, len(c.syllableOrder))
	for _, key := range c.syllableOrder {
		out = append(out, c.syllables[key])
	}
	return out
}

// Stats returns counters for the tokens folded so far.
func (c *Corpus) Stats() Stats {
	s := c.stats
	s.UniqueWords = len(c.words)
	s.UniqueSyllables = len(c.syllables)
	return s
}

// IsEmpty reports whether no stressed word has been recorded.
func (c *Corpus) IsEmpty() bool {
	return len(c.words) == 0
}
