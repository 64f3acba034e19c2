package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/rushin/internal/adapter/postgres"
	"github.com/heartmarshall/rushin/internal/adapter/postgres/corpusrepo"
	"github.com/heartmarshall/rushin/internal/app"
	"github.com/heartmarshall/rushin/internal/app/analyzer"
	"github.com/heartmarshall/rushin/internal/app/stripper"
	"github.com/heartmarshall/rushin/internal/config"
)

// Compile-time interface assertions.
var (
	_ analyzer.Store    = (*corpusrepo.Repo)(nil)
	_ analyzer.TxRunner = (*postgres.TxManager)(nil)
)

var errPersistFailed = errors.New("corpus exported but could not be persisted")

// runtime is bound to every command's Run method.
type runtime struct {
	cfg    *config.Config
	log    *slog.Logger
	stdout io.Writer
}

// AnalyzeCmd ingests a text file and writes the corpus export.
type AnalyzeCmd struct {
	Input   string `name:"input" short:"i" required:"" type:"existingfile" help:"UTF-8 text with stress marks"`
	Output  string `name:"output" short:"o" required:"" type:"path" help:"Output JSON file"`
	Persist bool   `name:"persist" help:"Also store the run in PostgreSQL"`
	Workers int    `name:"workers" short:"w" help:"Goroutines building word records (default: ingest.workers)"`
}

func (a *AnalyzeCmd) Run(rt *runtime) error {
	// CLI flags override config.
	cfg := *rt.cfg
	if a.Workers > 0 {
		cfg.Ingest.Workers = a.Workers
	}
	if a.Persist {
		cfg.Ingest.Persist = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Ingest.Timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt.log.Info("starting analysis",
		slog.String("version", app.BuildVersion()),
		slog.String("input", a.Input),
		slog.Int("workers", cfg.Ingest.Workers),
		slog.Bool("persist", cfg.Ingest.Persist),
	)

	var (
		store analyzer.Store
		txm   analyzer.TxRunner
	)
	if cfg.Ingest.Persist {
		if err := postgres.MigrateDSN(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		store = corpusrepo.New(pool)
		txm = postgres.NewTxManager(pool)
	}

	pipeline := analyzer.NewPipeline(rt.log, store, txm, analyzer.Config{
		InputPath:  a.Input,
		OutputPath: a.Output,
		Workers:    cfg.Ingest.Workers,
		BatchSize:  cfg.Ingest.BatchSize,
	})
	if err := pipeline.Run(ctx); err != nil {
		return err
	}
	if pipeline.HasErrors() {
		return errPersistFailed
	}

	stats := pipeline.Corpus().Stats()
	fmt.Fprintf(rt.stdout, "%d tokens, %d stressed words, %d syllables -> %s\n",
		stats.TotalTokens, stats.UniqueWords, stats.UniqueSyllables, a.Output)
	if cfg.Ingest.Persist {
		fmt.Fprintf(rt.stdout, "run %s\n", pipeline.RunID())
	}
	return nil
}

// StripCmd removes stress marks from dictionary values.
type StripCmd struct {
	Input  string `name:"input" short:"i" required:"" type:"existingfile" help:"JSON object of word to pronunciation"`
	Output string `name:"output" short:"o" required:"" type:"path" help:"Output JSON file"`
	Mode   string `name:"mode" short:"m" default:"accent" enum:"accent,letters" help:"accent: drop stress marks only; letters: keep lowercase letters only"`
}

func (s *StripCmd) Run(rt *runtime) error {
	mode, err := stripper.ParseMode(s.Mode)
	if err != nil {
		return err
	}

	n, err := stripper.New(rt.log, mode).ConvertFile(s.Input, s.Output)
	if err != nil {
		return err
	}

	fmt.Fprintf(rt.stdout, "%d entries -> %s\n", n, s.Output)
	return nil
}

// VersionCmd prints build information.
type VersionCmd struct{}

func (v *VersionCmd) Run(rt *runtime) error {
	fmt.Fprintln(rt.stdout, "rushin", app.BuildVersion())
	return nil
}
