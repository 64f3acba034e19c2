package corpusrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/rushin/internal/domain"
)

func newMockRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return New(mock), mock
}

// anyArgs matches n bound values of a multi-row insert.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func wordRowValues(w domain.WordRecord) []any {
	return []any{
		w.Text, w.StressedVowel, w.StressMarkIndex, w.LetterCount, w.VowelCount,
		w.Syllables, w.SyllableCount, w.StressVowelOrdinal, w.StressSyllable,
		w.StressSyllableIndex, w.PreStressConsonants, w.PostStressConsonants,
	}
}

func sampleWord() domain.WordRecord {
	return domain.WordRecord{
		Text:                 "окно\u0301",
		StressedVowel:        domain.StrPtr("о\u0301"),
		StressMarkIndex:      domain.IntPtr(4),
		LetterCount:          4,
		VowelCount:           2,
		Syllables:            []string{"о", "кно\u0301"},
		SyllableCount:        2,
		StressVowelOrdinal:   domain.IntPtr(2),
		StressSyllable:       domain.StrPtr("кно\u0301"),
		StressSyllableIndex:  domain.IntPtr(2),
		PreStressConsonants:  domain.StrPtr("кн"),
		PostStressConsonants: domain.StrPtr(""),
	}
}

func TestRepo_CreateRun(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	run := domain.NewIngestRun("corpus.txt", time.Now())
	run.TotalTokens = 3

	mock.ExpectExec("INSERT INTO ingest_runs").
		WithArgs(run.ID, "corpus.txt", 3, 0, 0, 0, run.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.CreateRun(context.Background(), run))
}

func TestRepo_BulkInsertWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		words   []domain.WordRecord
		setup   func(mock pgxmock.PgxPoolIface)
		want    int
		wantErr bool
	}{
		{
			name:  "empty batch skips query",
			words: nil,
			setup: func(mock pgxmock.PgxPoolIface) {},
			want:  0,
		},
		{
			name:  "inserts rows",
			words: []domain.WordRecord{sampleWord(), {Text: "дом", Syllables: []string{"дом"}}},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO run_words .* ON CONFLICT \\(run_id, text\\) DO NOTHING").
					WithArgs(anyArgs(2 * (len(wordColumns) + 1))...).
					WillReturnResult(pgxmock.NewResult("INSERT", 2))
			},
			want: 2,
		},
		{
			name:  "database error",
			words: []domain.WordRecord{sampleWord()},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO run_words").
					WithArgs(anyArgs(len(wordColumns) + 1)...).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, mock := newMockRepo(t)
			tt.setup(mock)

			got, err := repo.BulkInsertWords(context.Background(), uuid.New(), tt.words)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepo_BulkUpsertSyllables(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	runID := uuid.New()
	syllables := []domain.SyllableRecord{
		{Text: "о", OccurrenceCount: 1, LetterCount: 1},
		{
			Text: "кно", OccurrenceCount: 1, StressedOccurrenceCount: 1, LetterCount: 3,
			StressedVowel: domain.StrPtr("о\u0301"), StressMarkIndex: domain.IntPtr(3),
		},
	}

	mock.ExpectExec("INSERT INTO run_syllables .* ON CONFLICT \\(run_id, text\\) DO UPDATE SET").
		WithArgs(
			runID, "о", 1, 0, 1, (*string)(nil), (*int)(nil),
			runID, "кно", 1, 1, 3, domain.StrPtr("о\u0301"), domain.IntPtr(3),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	got, err := repo.BulkUpsertSyllables(context.Background(), runID, syllables)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestRepo_BulkUpsertSyllables_Empty(t *testing.T) {
	t.Parallel()

	repo, _ := newMockRepo(t)

	got, err := repo.BulkUpsertSyllables(context.Background(), uuid.New(), []domain.SyllableRecord{})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestRepo_GetRun(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	id := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows(runColumns).AddRow(id, "stdin", 5, 4, 3, 6, now)
	mock.ExpectQuery("SELECT .* FROM ingest_runs").WithArgs(id.String()).WillReturnRows(rows)

	got, err := repo.GetRun(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.IngestRun{
		ID: id, Source: "stdin", TotalTokens: 5, StressedTokens: 4, WordCount: 3, SyllableCount: 6, CreatedAt: now,
	}, got)
}

func TestRepo_GetWord(t *testing.T) {
	t.Parallel()

	runID := uuid.New()
	word := sampleWord()

	tests := []struct {
		name      string
		setup     func(mock pgxmock.PgxPoolIface)
		wantErrIs error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(wordColumns).AddRow(wordRowValues(word)...)
				mock.ExpectQuery("SELECT .* FROM run_words").
					WithArgs(runID.String(), word.Text).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT .* FROM run_words").
					WithArgs(runID.String(), word.Text).
					WillReturnRows(pgxmock.NewRows(wordColumns))
			},
			wantErrIs: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, mock := newMockRepo(t)
			tt.setup(mock)

			got, err := repo.GetWord(context.Background(), runID, word.Text)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, word, got)
		})
	}
}

func TestRepo_ListWords(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	runID := uuid.New()
	word := sampleWord()

	rows := pgxmock.NewRows(wordColumns).AddRow(wordRowValues(word)...)
	mock.ExpectQuery("SELECT .* FROM run_words .* ORDER BY text ASC").
		WithArgs(runID.String()).
		WillReturnRows(rows)

	got, err := repo.ListWords(context.Background(), runID)
	require.NoError(t, err)
	assert.Equal(t, []domain.WordRecord{word}, got)
}

func TestRepo_ListSyllables(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	runID := uuid.New()
	vowel := "о\u0301"
	idx := 3

	rows := pgxmock.NewRows(syllableColumns).
		AddRow("кно", 2, 2, 3, &vowel, &idx).
		AddRow("о", 2, 0, 1, (*string)(nil), (*int)(nil))
	mock.ExpectQuery("SELECT .* FROM run_syllables .* ORDER BY occurrence_count DESC, text ASC").
		WithArgs(runID.String()).
		WillReturnRows(rows)

	got, err := repo.ListSyllables(context.Background(), runID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "кно", got[0].Text)
	assert.Equal(t, 2, got[0].StressedOccurrenceCount)
	assert.Equal(t, &vowel, got[0].StressedVowel)
	assert.False(t, got[1].HasStress())
}

func TestRepo_ListSyllables_QueryError(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT").WithArgs(pgxmock.AnyArg()).WillReturnError(context.DeadlineExceeded)

	_, err := repo.ListSyllables(context.Background(), uuid.New())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
