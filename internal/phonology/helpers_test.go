package phonology

import "strings"

// marked replaces every apostrophe with the stress mark, so "молоко'" reads
// as "молоко́" without relying on how an editor renders combining characters.
func marked(s string) string {
	return strings.ReplaceAll(s, "'", "\u0301")
}

func markedAll(ss ...string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = marked(s)
	}
	return out
}
