// Package analyzer runs the offline analysis of a stress-marked text file:
// ingest the corpus, export it as JSON, and optionally persist the run.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/rushin/internal/corpus"
	"github.com/heartmarshall/rushin/internal/domain"
	"github.com/heartmarshall/rushin/internal/export"
)

// Phase names in execution order.
const (
	PhaseIngest  = "ingest"
	PhaseExport  = "export"
	PhasePersist = "persist"
)

// Config holds pipeline settings.
type Config struct {
	InputPath  string
	OutputPath string
	Workers    int
	BatchSize  int
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// phase is one pipeline step. A fatal phase stops the run on failure.
type phase struct {
	name  string
	fn    func(context.Context) PhaseResult
	fatal bool
}

// Pipeline orchestrates one analysis run. Persistence is enabled only when
// a store is given.
type Pipeline struct {
	log     *slog.Logger
	store   Store
	tx      TxRunner
	cfg     Config
	now     func() time.Time
	results map[string]PhaseResult
	order   []string

	corpus *corpus.Corpus
	runID  uuid.UUID
}

// NewPipeline creates a new Pipeline. store and tx may both be nil, in which
// case the persist phase does not run.
func NewPipeline(log *slog.Logger, store Store, tx TxRunner, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		store:   store,
		tx:      tx,
		cfg:     cfg,
		now:     time.Now,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Phases returns the names of the phases that ran, in order.
func (p *Pipeline) Phases() []string {
	return p.order
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Corpus returns the ingested corpus, or nil before a successful ingest.
func (p *Pipeline) Corpus() *corpus.Corpus {
	return p.corpus
}

// RunID returns the ID of the persisted run, or uuid.Nil when nothing was
// persisted.
func (p *Pipeline) RunID() uuid.UUID {
	return p.runID
}

// Run executes the pipeline. A failing ingest or export aborts the run and
// is returned; a failing persist is only recorded in Results.
func (p *Pipeline) Run(ctx context.Context) error {
	phases := []phase{
		{PhaseIngest, p.runIngest, true},
		{PhaseExport, p.runExport, true},
	}
	if p.store != nil && p.tx != nil {
		phases = append(phases, phase{PhasePersist, p.runPersist, false})
	}

	for _, ph := range phases {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", ph.name))

		result := ph.fn(ctx)
		result.Duration = time.Since(start)
		p.results[ph.name] = result
		p.order = append(p.order, ph.name)

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", ph.name),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			if ph.fatal {
				return fmt.Errorf("%s: %w", ph.name, result.Err)
			}
			continue
		}

		p.log.Info("phase completed",
			slog.String("phase", ph.name),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(p.order)))
	return nil
}

func (p *Pipeline) runIngest(ctx context.Context) PhaseResult {
	text, err := readText(p.cfg.InputPath)
	if err != nil {
		return PhaseResult{Err: err}
	}

	c, err := corpus.IngestParallel(ctx, text, p.cfg.Workers)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("ingest corpus: %w", err)}
	}
	p.corpus = c

	stats := c.Stats()
	p.log.Info("corpus ingested",
		slog.Int("total_tokens", stats.TotalTokens),
		slog.Int("stressed_tokens", stats.StressedTokens),
		slog.Int("unique_words", stats.UniqueWords),
		slog.Int("unique_syllables", stats.UniqueSyllables),
	)
	if c.IsEmpty() {
		p.log.Warn("no stressed words found", slog.String("input", p.cfg.InputPath))
	}

	return PhaseResult{
		Inserted: stats.UniqueWords,
		Skipped:  stats.UnstressedTokens + stats.RepeatedTokens,
	}
}

func (p *Pipeline) runExport(_ context.Context) PhaseResult {
	out := p.corpus.Export()
	if err := export.WriteFile(p.cfg.OutputPath, out); err != nil {
		return PhaseResult{Err: fmt.Errorf("write %s: %w", p.cfg.OutputPath, err)}
	}
	return PhaseResult{Inserted: len(out.Words) + len(out.Syllables)}
}

func (p *Pipeline) runPersist(ctx context.Context) PhaseResult {
	stats := p.corpus.Stats()
	run := domain.NewIngestRun(p.cfg.InputPath, p.now())
	run.TotalTokens = stats.TotalTokens
	run.StressedTokens = stats.StressedTokens
	run.WordCount = stats.UniqueWords
	run.SyllableCount = stats.UniqueSyllables

	var result PhaseResult
	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := p.store.CreateRun(ctx, run); err != nil {
			return fmt.Errorf("create run: %w", err)
		}

		inserted, err := batchProcess(p.corpus.Words(), p.cfg.BatchSize, func(batch []domain.WordRecord) (int, error) {
			return p.store.BulkInsertWords(ctx, run.ID, batch)
		})
		if err != nil {
			return fmt.Errorf("insert words: %w", err)
		}
		result.Inserted += inserted

		upserted, err := batchProcess(p.corpus.Syllables(), p.cfg.BatchSize, func(batch []domain.SyllableRecord) (int, error) {
			return p.store.BulkUpsertSyllables(ctx, run.ID, batch)
		})
		if err != nil {
			return fmt.Errorf("upsert syllables: %w", err)
		}
		result.Inserted += upserted
		return nil
	})
	if err != nil {
		return PhaseResult{Errors: 1, Err: err}
	}

	p.runID = run.ID
	p.log.Info("run persisted", slog.String("run_id", run.ID.String()))
	return result
}

// readText loads the input file and rejects anything that is not UTF-8.
// The text is brought to NFC so that ё and й typed as a base letter plus a
// combining mark become the single letters the alphabet knows. Cyrillic has
// no precomposed vowel with an acute accent, so stress marks on vowels stay
// separate characters.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w: %w", domain.ErrInvalidInput, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read input %s: %w", path, errInvalidUTF8)
	}
	return norm.NFC.String(string(data)), nil
}

var errInvalidUTF8 = fmt.Errorf("%w: not valid UTF-8", domain.ErrInvalidInput)

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// IsInputError reports whether err was caused by an unreadable or non-UTF-8
// input file. Failures writing the export or reaching the database are not
// input errors, even when they wrap os.ErrNotExist.
func IsInputError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput)
}
