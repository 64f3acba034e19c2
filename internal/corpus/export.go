package corpus

import (
	"maps"

	"github.com/heartmarshall/rushin/internal/domain"
)

// Export is the serializable form of a corpus. Maps marshal with sorted keys,
// so equal corpora encode to identical bytes.
type Export struct {
	Words     map[string]domain.WordRecord     `json:"words"`
	Syllables map[string]domain.SyllableRecord `json:"syllables"`
	Stats     Stats                            `json:"stats"`
}

// Export copies both tables into an Export.
func (c *Corpus) Export() Export {
	return Export{
		Words:     maps.Clone(c.words),
		Syllables: maps.Clone(c.syllables),
		Stats:     c.Stats(),
	}
}
