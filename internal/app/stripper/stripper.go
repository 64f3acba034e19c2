// Package stripper removes stress marks from word→pronunciation
// dictionaries stored as JSON objects.
package stripper

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/rushin/internal/domain"
	"github.com/heartmarshall/rushin/internal/export"
)

// Mode selects how values are stripped.
type Mode string

const (
	// ModeAccent removes only stress marks and keeps every other character.
	ModeAccent Mode = "accent"
	// ModeLetters keeps letters only, lowercased, words joined by one space.
	ModeLetters Mode = "letters"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAccent, ModeLetters:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown strip mode %q", domain.ErrValidation, s)
	}
}

// Strip applies mode to a single value.
func Strip(value string, mode Mode) string {
	if mode == ModeLetters {
		return domain.NormalizeText(value, false)
	}
	return domain.StripStressMark(value)
}

// Convert returns a new dictionary with the same keys and stripped values.
func Convert(dict map[string]string, mode Mode) map[string]string {
	out := make(map[string]string, len(dict))
	for k, v := range dict {
		out[k] = Strip(v, mode)
	}
	return out
}

// Stripper converts dictionary files.
type Stripper struct {
	log  *slog.Logger
	mode Mode
}

// New creates a Stripper for mode.
func New(log *slog.Logger, mode Mode) *Stripper {
	return &Stripper{log: log, mode: mode}
}

// ConvertFile reads the dictionary at in, strips every value and writes the
// result to out. Returns the number of converted entries.
func (s *Stripper) ConvertFile(in, out string) (int, error) {
	var dict map[string]string
	if err := export.ReadFile(in, &dict); err != nil {
		return 0, fmt.Errorf("load dictionary: %w", err)
	}

	converted := Convert(dict, s.mode)
	if err := export.WriteFile(out, converted); err != nil {
		return 0, fmt.Errorf("save dictionary: %w", err)
	}

	s.log.Info("dictionary stripped",
		slog.String("mode", string(s.mode)),
		slog.Int("entries", len(converted)),
		slog.String("output", out),
	)
	return len(converted), nil
}
