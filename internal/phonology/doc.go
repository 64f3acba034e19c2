// Package phonology locates stress, counts letter classes and splits Russian
// words into syllables.
//
// Words are expected in the normalized form produced by domain.Normalize with
// the stress mark kept: lowercase Cyrillic letters and at most one
// domain.StressMark placed right after the vowel it modifies. Positions are
// counted in characters (runes), not bytes.
//
// Every function is total over that input: empty strings, unstressed words,
// one-vowel words and lookahead past the end of a word are ordinary cases and
// never produce an error or a panic.
package phonology
