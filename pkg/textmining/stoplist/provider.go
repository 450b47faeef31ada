package stoplist

import (
	"context"
	"fmt"
)

// Provider supplies the base language stopword corpus. Implementations may
// fetch it from an external resource, read a cache, or hold a fixed list.
type Provider interface {
	Words(ctx context.Context) ([]string, error)
}

// ExtensionWords are high-noise words common in support dialogue, added on
// top of the base corpus so top tokens stay topic-focused (devices,
// accounts, orders) instead of conversational filler.
var ExtensionWords = []string{
	"would", "like", "also", "still", "really", "just",
	"get", "got", "going", "go", "one", "can", "could",
	"im", "ive", "youre", "theyre", "weve",
	"dont", "doesnt", "didnt",
	"want", "need", "know", "back", "time",
	"thanks", "thank", "please",
}

// Build constructs the run's stopword set: the provider's base corpus plus
// the fixed support-noise extension list. Fails only when the provider
// cannot supply the base corpus.
func Build(ctx context.Context, p Provider) (*Set, error) {
	base, err := p.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("load base stopword corpus: %w", err)
	}
	set := New(base)
	for _, w := range ExtensionWords {
		set.Add(w)
	}
	return set, nil
}

// Static is a Provider backed by a fixed word list. It never fails and
// needs no network or cache, which makes it the natural substitute in
// tests and offline runs.
type Static []string

// Words implements Provider.
func (s Static) Words(ctx context.Context) ([]string, error) {
	out := make([]string, len(s))
	copy(out, s)
	return out, nil
}
