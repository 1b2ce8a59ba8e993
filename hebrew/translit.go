package hebrew

// digraphs is checked before unigraphs at every cursor position.
// Longest match wins; there is no backtracking.
var digraphs = map[string]string{
	"CH": "ח",
	"KH": "כ",
	"PH": "פ",
	"SH": "ש",
	"TH": "ת",
	"TS": "צ",
	"TZ": "צ",
}

// unigraphs maps a single Latin letter to one or two canonical letters.
// Letters absent from the table (the vowel E) have no consonant value and
// are dropped during encoding.
var unigraphs = map[byte]string{
	'A': "א",
	'B': "ב",
	'C': "כ",
	'D': "ד",
	'F': "פ",
	'G': "ג",
	'H': "ה",
	'I': "י",
	'J': "י",
	'K': "כ",
	'L': "ל",
	'M': "מ",
	'N': "נ",
	'O': "ע",
	'P': "פ",
	'Q': "ק",
	'R': "ר",
	'S': "ס",
	'T': "ט",
	'U': "ו",
	'V': "ו",
	'W': "ו",
	'X': "כס",
	'Y': "י",
	'Z': "ז",
}

// Encode converts a free-text token into a canonical letter pattern.
//
// Non-ASCII-letter characters are discarded up front. The remainder is
// uppercased and scanned left to right: at each position a two-character
// digraph lookup is attempted before the single-character lookup, the
// matched table entry is appended (one or two letters), and the cursor
// advances by the consumed length. A character with no mapping advances the
// cursor by one and counts toward dropped.
//
// An input with no mappable characters yields an empty pattern; that is a
// valid outcome which callers must reject via core.ValidateRequest before
// searching.
func Encode(token string) (pattern []rune, dropped int) {
	// Step one: ASCII letters only, uppercased.
	cleaned := make([]byte, 0, len(token))
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c >= 'A' && c <= 'Z':
			cleaned = append(cleaned, c)
		case c >= 'a' && c <= 'z':
			cleaned = append(cleaned, c-'a'+'A')
		}
	}

	pattern = make([]rune, 0, len(cleaned))
	for i := 0; i < len(cleaned); {
		if i+1 < len(cleaned) {
			if out, ok := digraphs[string(cleaned[i:i+2])]; ok {
				pattern = append(pattern, []rune(out)...)
				i += 2
				continue
			}
		}
		if out, ok := unigraphs[cleaned[i]]; ok {
			pattern = append(pattern, []rune(out)...)
		} else {
			dropped++
		}
		i++
	}
	return pattern, dropped
}
