package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically; call it again after applying CLI overrides.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Ingest.validate(); err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	if c.Ingest.Persist && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required when ingest.persist is enabled")
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
}

func (i *IngestConfig) validate() error {
	if i.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", i.Workers)
	}
	if i.BatchSize < 1 {
		return fmt.Errorf("batch_size must be >= 1 (got %d)", i.BatchSize)
	}
	if i.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", i.Timeout)
	}
	return nil
}
