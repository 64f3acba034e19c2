package domain

// StressMark is the combining acute accent (U+0301). In stress-marked text it
// follows the vowel it modifies: "о́" is stored as 'о' then StressMark, never
// as a precomposed glyph.
const StressMark = '\u0301'

// RuneSet is an immutable set of single characters.
type RuneSet map[rune]struct{}

func newRuneSet(s string) RuneSet {
	set := make(RuneSet, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports whether r belongs to the set.
func (s RuneSet) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Letter classification. Sonorants ⊆ Consonants ⊆ Alphabet,
// Vowels ∩ Consonants = ∅ and Vowels ∪ Consonants = Alphabet.
var (
	Vowels     = newRuneSet(vowelLetters)
	Consonants = newRuneSet(consonantLetters)
	Sonorants  = newRuneSet("рлмнйРЛМНЙ")
	Alphabet   = newRuneSet(vowelLetters + consonantLetters)
)

const (
	vowelLetters     = "аэыуояеёюиАЭЫУОЯЕЁЮИ"
	consonantLetters = "бвгджзклмнпрстфхцчшщйьъБВГДЖЗКЛМНПРСТФХЦЧШЩЙЬЪ"
)

// IsVowel reports whether r is a Russian vowel letter.
func IsVowel(r rune) bool { return Vowels.Contains(r) }

// IsConsonant reports whether r is a Russian consonant letter (including ь and ъ).
func IsConsonant(r rune) bool { return Consonants.Contains(r) }

// IsSonorant reports whether r is one of р, л, м, н, й in either case.
func IsSonorant(r rune) bool { return Sonorants.Contains(r) }

// IsLetter reports whether r belongs to the Russian alphabet.
func IsLetter(r rune) bool { return Alphabet.Contains(r) }
