package corpus

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/rushin/internal/domain"
	"github.com/heartmarshall/rushin/internal/phonology"
)

// Ingest normalizes text with stress marks kept and folds every token, in
// order, into a fresh corpus.
func Ingest(text string) *Corpus {
	c := New()
	for _, token := range domain.Normalize(text, true) {
		c.Add(token)
	}
	return c
}

// IngestParallel produces the same corpus as Ingest but builds word records
// on up to workers goroutines. Records are folded in input order, so
// first-sighting semantics are preserved. workers < 1 is treated as 1.
func IngestParallel(ctx context.Context, text string, workers int) (*Corpus, error) {
	if workers < 1 {
		workers = 1
	}
	tokens := domain.Normalize(text, true)

	// Unique stressed tokens in first-sighting order.
	seen := make(map[string]int)
	var unique []string
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		if !phonology.HasStressedVowel(token) {
			continue
		}
		seen[token] = len(unique)
		unique = append(unique, token)
	}

	records := make([]domain.WordRecord, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, token := range unique {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = phonology.BuildWordRecord(token)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build word records: %w", err)
	}

	prebuilt := func(token string) domain.WordRecord {
		return records[seen[token]]
	}

	c := New()
	for _, token := range tokens {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("fold tokens: %w", err)
		}
		c.add(token, prebuilt)
	}
	return c, nil
}
