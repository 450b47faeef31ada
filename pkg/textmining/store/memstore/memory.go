package memstore

import (
	"context"
	"sync"
	"time"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu      sync.RWMutex
	sources map[string]entry
}

type entry struct {
	words     []string
	fetchedAt time.Time
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{sources: make(map[string]entry)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// Words implements store.Store.
func (s *Store) Words(ctx context.Context, source string) ([]string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sources[source]
	if !ok {
		return nil, false, nil
	}
	out := make([]string, len(e.words))
	copy(out, e.words)
	return out, true, nil
}

// PutWords implements store.Store.
func (s *Store) PutWords(ctx context.Context, source string, words []string, fetchedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]string, len(words))
	copy(copied, words)
	s.sources[source] = entry{words: copied, fetchedAt: fetchedAt}
	return nil
}

// FetchedAt reports when a source was cached, for test assertions.
func (s *Store) FetchedAt(source string) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sources[source]
	return e.fetchedAt, ok
}
