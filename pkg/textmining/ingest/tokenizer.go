package ingest

import "strings"

// Tokenize splits normalized text into lowercase word tokens, ordered
// left-to-right with duplicates retained. A token is a maximal run of ASCII
// alphanumerics, optionally continued through a single interior apostrophe
// ("can't" stays one token, a doubled apostrophe splits). Everything else
// is a separator. Empty input yields a nil slice.
func Tokenize(text string) []string {
	runes := []rune(strings.ToLower(text))

	var tokens []string
	var current strings.Builder
	apostrophe := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
		apostrophe = false
	}

	for i, r := range runes {
		switch {
		case isAlnum(r):
			current.WriteRune(r)
		case r == '\'' && current.Len() > 0 && !apostrophe && i+1 < len(runes) && isAlnum(runes[i+1]):
			current.WriteRune(r)
			apostrophe = true
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// isAlnum reports whether r is an ASCII lowercase letter or digit. Non-ASCII
// letters act as separators; normalization upstream folds the common
// lookalikes into ASCII first.
func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
