package domain

import (
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		includeStress bool
		want          []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "only spaces", input: "  \t\n ", want: []string{}},
		{name: "lowercase", input: "Молоко ДОМ", want: []string{"молоко", "дом"}},
		{name: "punctuation dropped", input: "дом, (кот)!", want: []string{"дом", "кот"}},
		{name: "latin-only unit skipped", input: "дом hello кот", want: []string{"дом", "кот"}},
		{name: "digits-only unit skipped", input: "123 дом", want: []string{"дом"}},
		{name: "stress kept", input: "молоко\u0301", includeStress: true, want: []string{"молоко\u0301"}},
		{name: "stress dropped", input: "молоко\u0301", includeStress: false, want: []string{"молоко"}},
		{name: "lone stress mark kept", input: "\u0301", includeStress: true, want: []string{"\u0301"}},
		{name: "lone stress mark dropped", input: "\u0301", includeStress: false, want: []string{}},
		{name: "hyphen removed", input: "кто-то", want: []string{"ктото"}},
		{name: "yo preserved", input: "ЁЖ", want: []string{"ёж"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.input, tt.includeStress)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tt.input, tt.includeStress, got, tt.want)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	got := NormalizeText("  Мо\u0301локо,   и  хлеб ", false)
	if got != "молоко и хлеб" {
		t.Errorf("NormalizeText = %q, want %q", got, "молоко и хлеб")
	}
}

func TestStripStressMark(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"молоко\u0301", "молоко"},
		{"моло\u0301ко\u0301", "молоко"},
		{"дом", "дом"},
		{"[mɐlɐˈko]\u0301", "[mɐlɐˈko]"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripStressMark(tt.input); got != tt.want {
			t.Errorf("StripStressMark(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
