package stoplist

import "strings"

// Set is an immutable-by-convention stopword set. Build one per run via
// Build and treat it as read-only afterwards.
type Set struct {
	words map[string]struct{}
}

// New creates a set from the given words, lowercasing each.
func New(words []string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts a word into the set.
func (s *Set) Add(word string) {
	s.words[strings.ToLower(word)] = struct{}{}
}

// Contains checks membership.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct stopwords.
func (s *Set) Len() int {
	return len(s.words)
}

// Words returns all stopwords in unspecified order.
func (s *Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	return out
}

// Filter retains tokens with at least minLen runes that are not in the set.
// Order is preserved; the input slice is not modified.
func Filter(tokens []string, set *Set, minLen int) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len([]rune(tok)) < minLen {
			continue
		}
		if set.Contains(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}
