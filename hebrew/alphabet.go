package hebrew

// The canonical alphabet is the Hebrew consonant block Alef through Tav.
// The five final forms inside that block never survive normalization.
const (
	Alef = 'א'
	Tav  = 'ת'
)

// finals maps each word-final letter form to its medial form.
var finals = map[rune]rune{
	'ך': 'כ',
	'ם': 'מ',
	'ן': 'נ',
	'ף': 'פ',
	'ץ': 'צ',
}

// IsLetter reports whether r falls in the Hebrew consonant block,
// final forms included.
func IsLetter(r rune) bool {
	return r >= Alef && r <= Tav
}

// IsFinal reports whether r is a word-final letter form.
func IsFinal(r rune) bool {
	_, ok := finals[r]
	return ok
}

// IsCanonical reports whether r is a canonical alphabet letter,
// that is a consonant that is not a final form.
func IsCanonical(r rune) bool {
	return IsLetter(r) && !IsFinal(r)
}

// Medial returns the canonical form of r: final forms map to their medial
// form, every other letter maps to itself.
func Medial(r rune) rune {
	if m, ok := finals[r]; ok {
		return m
	}
	return r
}
