package hebrew

// Normalize strips a raw text unit down to its canonical consonants.
//
// Only characters inside the consonant block are retained, in original
// order, with final forms rewritten to their medial forms. Everything else
// (niqqud, cantillation, punctuation, separators, digits) is dropped, not
// reported as an error. The second return value counts the dropped
// non-whitespace characters.
func Normalize(raw string) (letters []rune, dropped int) {
	letters = make([]rune, 0, len(raw)/2)
	for _, r := range raw {
		switch {
		case IsLetter(r):
			letters = append(letters, Medial(r))
		case r == ' ', r == '\t', r == '\n', r == '\r':
			// Word separators are structural, not noise.
		default:
			dropped++
		}
	}
	return letters, dropped
}
