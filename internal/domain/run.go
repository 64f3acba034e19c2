package domain

import (
	"time"

	"github.com/google/uuid"
)

// IngestRun describes one persisted aggregation run.
type IngestRun struct {
	ID             uuid.UUID `json:"id"`
	Source         string    `json:"source"`
	TotalTokens    int       `json:"total_tokens"`
	StressedTokens int       `json:"stressed_tokens"`
	WordCount      int       `json:"word_count"`
	SyllableCount  int       `json:"syllable_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewIngestRun creates a run with a fresh ID.
func NewIngestRun(source string, now time.Time) IngestRun {
	return IngestRun{
		ID:        uuid.New(),
		Source:    source,
		CreatedAt: now,
	}
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string { return &s }

// IntPtr returns a pointer to n.
func IntPtr(n int) *int { return &n }
