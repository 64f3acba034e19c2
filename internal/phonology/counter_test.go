package phonology

import (
	"testing"

	"github.com/heartmarshall/rushin/internal/domain"
)

func TestCountMembers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		set       domain.RuneSet
		opts      CountOptions
		wantMatch string
		wantCount int
	}{
		{name: "whole string vowels", text: "молоко", set: domain.Vowels, wantMatch: "ооо", wantCount: 3},
		{name: "whole string letters ignore mark", text: marked("молоко'"), set: domain.Alphabet, wantMatch: "молоко", wantCount: 6},
		{name: "empty text", text: "", set: domain.Vowels, wantMatch: "", wantCount: 0},
		{
			name: "inclusive stop", text: marked("моло'ко"), set: domain.Vowels,
			opts:      CountOptions{Stop: marked("о'")},
			wantMatch: "оо", wantCount: 2,
		},
		{
			name: "exclusive stop", text: marked("моло'ко"), set: domain.Vowels,
			opts:      CountOptions{Stop: marked("о'"), Exclusive: true},
			wantMatch: "о", wantCount: 1,
		},
		{
			name: "missing stop scans everything", text: "молоко", set: domain.Vowels,
			opts:      CountOptions{Stop: "ы"},
			wantMatch: "ооо", wantCount: 3,
		},
		{
			name: "leading run", text: "встреча", set: domain.Consonants,
			opts:      CountOptions{StopAtNonMember: true},
			wantMatch: "встр", wantCount: 4,
		},
		{
			name: "leading run empty", text: "окно", set: domain.Consonants,
			opts:      CountOptions{StopAtNonMember: true},
			wantMatch: "", wantCount: 0,
		},
		{
			name: "leading run whole string", text: "вств", set: domain.Consonants,
			opts:      CountOptions{StopAtNonMember: true},
			wantMatch: "вств", wantCount: 4,
		},
		{
			name: "leading run inside stop window", text: "стрла", set: domain.Consonants,
			opts:      CountOptions{Stop: "р", StopAtNonMember: true},
			wantMatch: "стр", wantCount: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			match, count := CountMembers(tt.text, tt.set, tt.opts)
			if match != tt.wantMatch || count != tt.wantCount {
				t.Errorf("CountMembers(%q) = (%q, %d), want (%q, %d)", tt.text, match, count, tt.wantMatch, tt.wantCount)
			}
		})
	}
}

func TestTrailingRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want string
	}{
		{"моло", ""},
		{"моловств", "вств"},
		{"", ""},
		{"ск", "ск"},
	}
	for _, tt := range tests {
		if got := TrailingRun(tt.text, domain.Consonants); got != tt.want {
			t.Errorf("TrailingRun(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
