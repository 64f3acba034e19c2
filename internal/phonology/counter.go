package phonology

import (
	"strings"

	"github.com/heartmarshall/rushin/internal/domain"
)

// CountOptions narrows what CountMembers scans.
type CountOptions struct {
	// Stop limits the scan to the prefix of the text that ends with the first
	// occurrence of Stop. An empty Stop, or one that does not occur, means the
	// whole text is scanned.
	Stop string
	// Exclusive ends the window right before Stop instead of after it.
	Exclusive bool
	// StopAtNonMember makes the scan return at the first character outside the
	// set, so only the leading run of members is collected.
	StopAtNonMember bool
}

// CountMembers collects the characters of text that belong to set, in order,
// and returns them with their count.
func CountMembers(text string, set domain.RuneSet, opts CountOptions) (string, int) {
	window := text
	if opts.Stop != "" {
		if idx := strings.Index(text, opts.Stop); idx >= 0 {
			if opts.Exclusive {
				window = text[:idx]
			} else {
				window = text[:idx+len(opts.Stop)]
			}
		}
	}

	var b strings.Builder
	count := 0
	for _, r := range window {
		if set.Contains(r) {
			b.WriteRune(r)
			count++
			continue
		}
		if opts.StopAtNonMember {
			break
		}
	}
	return b.String(), count
}

// Count is CountMembers over the whole text, returning only the count.
func Count(text string, set domain.RuneSet) int {
	_, n := CountMembers(text, set, CountOptions{})
	return n
}

// LeadingRun returns the unbroken run of set members at the start of text.
func LeadingRun(text string, set domain.RuneSet) string {
	run, _ := CountMembers(text, set, CountOptions{StopAtNonMember: true})
	return run
}

// TrailingRun returns the unbroken run of set members at the end of text.
func TrailingRun(text string, set domain.RuneSet) string {
	return reverse(LeadingRun(reverse(text), set))
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
