package domain

import "testing"

func occurrence(text string, stressed bool) SyllableRecord {
	rec := SyllableRecord{Text: text, OccurrenceCount: 1, LetterCount: len([]rune(text))}
	if stressed {
		rec.StressedOccurrenceCount = 1
		rec.StressedVowel = StrPtr("о\u0301")
		rec.StressMarkIndex = IntPtr(2)
	}
	return rec
}

func TestMergeSyllable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		existing     SyllableRecord
		next         SyllableRecord
		wantCount    int
		wantStressed int
		wantStress   bool
	}{
		{"unstressed then unstressed", occurrence("ко", false), occurrence("ко", false), 2, 0, false},
		{"unstressed then stressed", occurrence("ко", false), occurrence("ко", true), 2, 1, true},
		{"stressed then unstressed", occurrence("ко", true), occurrence("ко", false), 2, 1, true},
		{"stressed then stressed", occurrence("ко", true), occurrence("ко", true), 2, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MergeSyllable(tt.existing, tt.next)
			if got.OccurrenceCount != tt.wantCount {
				t.Errorf("OccurrenceCount = %d, want %d", got.OccurrenceCount, tt.wantCount)
			}
			if got.StressedOccurrenceCount != tt.wantStressed {
				t.Errorf("StressedOccurrenceCount = %d, want %d", got.StressedOccurrenceCount, tt.wantStressed)
			}
			if got.HasStress() != tt.wantStress {
				t.Errorf("HasStress = %v, want %v", got.HasStress(), tt.wantStress)
			}
			if got.LetterCount != tt.existing.LetterCount {
				t.Errorf("LetterCount = %d, want %d", got.LetterCount, tt.existing.LetterCount)
			}
		})
	}
}

func TestMergeSyllable_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	existing := occurrence("ко", false)
	next := occurrence("ко", true)
	_ = MergeSyllable(existing, next)

	if existing.OccurrenceCount != 1 || existing.HasStress() {
		t.Errorf("existing mutated: %+v", existing)
	}
}

func TestMergeSyllable_KeepsFirstStress(t *testing.T) {
	t.Parallel()

	first := occurrence("ко", true)
	second := occurrence("ко", true)
	second.StressMarkIndex = IntPtr(7)

	got := MergeSyllable(first, second)
	if *got.StressMarkIndex != 2 {
		t.Errorf("StressMarkIndex = %d, want 2 (first stressed sighting wins)", *got.StressMarkIndex)
	}
}

func TestMergeSyllable_DifferentKeys(t *testing.T) {
	t.Parallel()

	got := MergeSyllable(occurrence("ко", false), occurrence("мо", true))
	if got.OccurrenceCount != 1 || got.HasStress() {
		t.Errorf("records with different keys must not merge, got %+v", got)
	}
}
