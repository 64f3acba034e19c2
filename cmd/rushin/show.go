package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/heartmarshall/rushin/internal/adapter/postgres"
	"github.com/heartmarshall/rushin/internal/adapter/postgres/corpusrepo"
	"github.com/heartmarshall/rushin/internal/domain"
	"github.com/heartmarshall/rushin/internal/export"
)

var _ runReader = (*corpusrepo.Repo)(nil)

// runReader reads a persisted run back.
type runReader interface {
	GetRun(ctx context.Context, id uuid.UUID) (domain.IngestRun, error)
	GetWord(ctx context.Context, runID uuid.UUID, text string) (domain.WordRecord, error)
	ListWords(ctx context.Context, runID uuid.UUID) ([]domain.WordRecord, error)
	ListSyllables(ctx context.Context, runID uuid.UUID) ([]domain.SyllableRecord, error)
}

// runView is the JSON document printed by show.
type runView struct {
	Run       domain.IngestRun        `json:"run"`
	Words     []domain.WordRecord     `json:"words"`
	Syllables []domain.SyllableRecord `json:"syllables"`
}

// ShowCmd prints a persisted run, or a single word of it.
type ShowCmd struct {
	RunID string `arg:"" name:"run-id" help:"Run ID printed by analyze --persist"`
	Word  string `name:"word" help:"Print only this word; it must carry a stress mark"`
}

func (s *ShowCmd) Run(rt *runtime) error {
	id, err := uuid.Parse(s.RunID)
	if err != nil {
		return fmt.Errorf("%w: run id %q", domain.ErrValidation, s.RunID)
	}
	word, err := lookupWord(s.Word)
	if err != nil {
		return err
	}
	if strings.TrimSpace(rt.cfg.Database.DSN) == "" {
		return fmt.Errorf("config: database.dsn is required for show")
	}

	ctx, cancel := context.WithTimeout(context.Background(), rt.cfg.Ingest.Timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, rt.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	rt.log.Debug("reading run", slog.String("run_id", id.String()), slog.String("word", word))
	return showRun(ctx, corpusrepo.New(pool), id, word, rt.stdout)
}

// lookupWord normalizes the --word flag the way ingest normalizes tokens.
// An empty flag yields "".
func lookupWord(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	tokens := domain.Normalize(raw, true)
	if len(tokens) != 1 {
		return "", fmt.Errorf("%w: --word must be a single word (got %q)", domain.ErrValidation, raw)
	}
	if !domain.HasStressMark(tokens[0]) {
		return "", fmt.Errorf("%w: --word %q has no stress mark; only stressed words are stored", domain.ErrValidation, raw)
	}
	return tokens[0], nil
}

func showRun(ctx context.Context, r runReader, id uuid.UUID, word string, w io.Writer) error {
	if word != "" {
		rec, err := r.GetWord(ctx, id, word)
		if err != nil {
			return err
		}
		return export.WriteJSON(w, rec)
	}

	run, err := r.GetRun(ctx, id)
	if err != nil {
		return err
	}
	words, err := r.ListWords(ctx, id)
	if err != nil {
		return err
	}
	syllables, err := r.ListSyllables(ctx, id)
	if err != nil {
		return err
	}
	return export.WriteJSON(w, runView{Run: run, Words: words, Syllables: syllables})
}
