package store

import (
	"context"
	"time"
)

// Store caches the downloaded stopword corpus so the fetch stays a one-time
// side effect across runs.
type Store interface {
	Close() error

	// Words returns the cached word list for a source, reporting whether
	// the source has been cached at all.
	Words(ctx context.Context, source string) ([]string, bool, error)

	// PutWords replaces the cached word list for a source.
	PutWords(ctx context.Context, source string, words []string, fetchedAt time.Time) error
}
