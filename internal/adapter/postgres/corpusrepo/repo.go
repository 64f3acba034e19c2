// Package corpusrepo persists aggregated corpus runs in PostgreSQL.
// Every ingest run owns its word and syllable rows; rows of different runs
// never interact.
package corpusrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/rushin/internal/adapter/postgres"
	"github.com/heartmarshall/rushin/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var runColumns = []string{
	"id", "source", "total_tokens", "stressed_tokens", "word_count", "syllable_count", "created_at",
}

var wordColumns = []string{
	"text", "stressed_vowel", "stress_mark_index", "letter_count", "vowel_count",
	"syllables", "syllable_count", "stress_vowel_ordinal", "stress_syllable",
	"stress_syllable_index", "pre_stress_consonants", "post_stress_consonants",
}

var syllableColumns = []string{
	"text", "occurrence_count", "stressed_occurrence_count", "letter_count",
	"stressed_vowel", "stress_mark_index",
}

// Merge rule for a syllable already stored in the run: counts add up, and
// stress info is adopted only when the stored row has none.
const syllableUpsertSuffix = `ON CONFLICT (run_id, text) DO UPDATE SET
	occurrence_count = run_syllables.occurrence_count + EXCLUDED.occurrence_count,
	stressed_occurrence_count = run_syllables.stressed_occurrence_count + EXCLUDED.stressed_occurrence_count,
	stressed_vowel = COALESCE(run_syllables.stressed_vowel, EXCLUDED.stressed_vowel),
	stress_mark_index = CASE WHEN run_syllables.stressed_vowel IS NULL
		THEN EXCLUDED.stress_mark_index ELSE run_syllables.stress_mark_index END`

// Repo provides corpus persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new corpus repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateRun inserts the run header. Returns domain.ErrAlreadyExists if the
// run ID is taken.
func (r *Repo) CreateRun(ctx context.Context, run domain.IngestRun) error {
	query, args, err := psql.Insert("ingest_runs").
		Columns(runColumns...).
		Values(run.ID, run.Source, run.TotalTokens, run.StressedTokens, run.WordCount, run.SyllableCount, run.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert run: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "ingest_run", run.ID.String())
	}
	return nil
}

// BulkInsertWords inserts word records of a run. Words already stored for
// the run are left untouched. Returns the number of inserted rows.
func (r *Repo) BulkInsertWords(ctx context.Context, runID uuid.UUID, words []domain.WordRecord) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	b := psql.Insert("run_words").Columns(append([]string{"run_id"}, wordColumns...)...)
	for _, w := range words {
		b = b.Values(
			runID, w.Text, w.StressedVowel, w.StressMarkIndex, w.LetterCount, w.VowelCount,
			w.Syllables, w.SyllableCount, w.StressVowelOrdinal, w.StressSyllable,
			w.StressSyllableIndex, w.PreStressConsonants, w.PostStressConsonants,
		)
	}

	query, args, err := b.Suffix("ON CONFLICT (run_id, text) DO NOTHING").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert words: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "run_word", runID.String())
	}
	return int(tag.RowsAffected()), nil
}

// BulkUpsertSyllables folds syllable records into the run's syllable table.
// The batch must not contain the same text twice. Returns the number of
// affected rows.
func (r *Repo) BulkUpsertSyllables(ctx context.Context, runID uuid.UUID, syllables []domain.SyllableRecord) (int, error) {
	if len(syllables) == 0 {
		return 0, nil
	}

	b := psql.Insert("run_syllables").Columns(append([]string{"run_id"}, syllableColumns...)...)
	for _, s := range syllables {
		b = b.Values(
			runID, s.Text, s.OccurrenceCount, s.StressedOccurrenceCount, s.LetterCount,
			s.StressedVowel, s.StressMarkIndex,
		)
	}

	query, args, err := b.Suffix(syllableUpsertSuffix).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build upsert syllables: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "run_syllable", runID.String())
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetRun returns the run header. Returns domain.ErrNotFound if absent.
func (r *Repo) GetRun(ctx context.Context, id uuid.UUID) (domain.IngestRun, error) {
	query, args, err := psql.Select(runColumns...).
		From("ingest_runs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.IngestRun{}, fmt.Errorf("build select run: %w", err)
	}

	var row runRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.IngestRun{}, scanError(err, "ingest_run", id.String())
	}
	return row.toDomain(), nil
}

// GetWord returns one word of a run. Returns domain.ErrNotFound if absent.
func (r *Repo) GetWord(ctx context.Context, runID uuid.UUID, text string) (domain.WordRecord, error) {
	query, args, err := psql.Select(wordColumns...).
		From("run_words").
		Where(sq.Eq{"run_id": runID, "text": text}).
		ToSql()
	if err != nil {
		return domain.WordRecord{}, fmt.Errorf("build select word: %w", err)
	}

	var row wordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.WordRecord{}, scanError(err, "run_word", text)
	}
	return row.toDomain(), nil
}

// ListWords returns all words of a run ordered by text.
func (r *Repo) ListWords(ctx context.Context, runID uuid.UUID) ([]domain.WordRecord, error) {
	query, args, err := psql.Select(wordColumns...).
		From("run_words").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("text ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	var rows []wordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "run_word", runID.String())
	}

	words := make([]domain.WordRecord, len(rows))
	for i, row := range rows {
		words[i] = row.toDomain()
	}
	return words, nil
}

// ListSyllables returns all syllables of a run, most frequent first.
func (r *Repo) ListSyllables(ctx context.Context, runID uuid.UUID) ([]domain.SyllableRecord, error) {
	query, args, err := psql.Select(syllableColumns...).
		From("run_syllables").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("occurrence_count DESC", "text ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list syllables: %w", err)
	}

	var rows []syllableRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "run_syllable", runID.String())
	}

	syllables := make([]domain.SyllableRecord, len(rows))
	for i, row := range rows {
		syllables[i] = row.toDomain()
	}
	return syllables, nil
}

func scanError(err error, entity, key string) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}
	return postgres.MapError(err, entity, key)
}
