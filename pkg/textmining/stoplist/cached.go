package stoplist

import (
	"context"
	"fmt"
	"time"

	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/internalerr"
	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/store"
)

// Fetcher downloads a word list from a remote source.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]string, error)
}

// Cached is a Provider that reads the base corpus from a store, fetching
// and caching it on first use. The fetch is a recoverable one-time side
// effect; only a failed fetch with an empty cache is fatal.
type Cached struct {
	store   store.Store
	fetcher Fetcher
	url     string
}

// NewCached creates a cache-backed provider for the given source URL.
func NewCached(st store.Store, f Fetcher, url string) *Cached {
	return &Cached{store: st, fetcher: f, url: url}
}

// Words implements Provider.
func (c *Cached) Words(ctx context.Context) ([]string, error) {
	words, ok, err := c.store.Words(ctx, c.url)
	if err != nil {
		return nil, fmt.Errorf("read stopword cache: %w", err)
	}
	if ok {
		return words, nil
	}

	words, err = c.fetcher.Fetch(ctx, c.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrCorpusUnavailable, err)
	}

	// Cache write is best-effort: the corpus is already in hand, so a
	// failed write only costs a refetch on the next run.
	_ = c.store.PutWords(ctx, c.url, words, time.Now())

	return words, nil
}
