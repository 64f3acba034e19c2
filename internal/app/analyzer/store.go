package analyzer

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/rushin/internal/domain"
)

// Store persists a finished corpus run. All methods use only domain types.
type Store interface {
	CreateRun(ctx context.Context, run domain.IngestRun) error
	BulkInsertWords(ctx context.Context, runID uuid.UUID, words []domain.WordRecord) (int, error)
	BulkUpsertSyllables(ctx context.Context, runID uuid.UUID, syllables []domain.SyllableRecord) (int, error)
}

// TxRunner runs fn inside one database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
