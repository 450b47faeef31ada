package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "stopwords.db")
	ctx := context.Background()

	st, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer st.Close()

	if _, ok, err := st.Words(ctx, "src"); err != nil || ok {
		t.Fatalf("Words() on fresh cache = ok=%v err=%v, want miss", ok, err)
	}

	words := []string{"and", "of", "the"}
	if err := st.PutWords(ctx, "src", words, time.Now()); err != nil {
		t.Fatalf("PutWords() error: %v", err)
	}

	got, ok, err := st.Words(ctx, "src")
	if err != nil || !ok {
		t.Fatalf("Words() = ok=%v err=%v, want hit", ok, err)
	}
	if !reflect.DeepEqual(got, words) {
		t.Errorf("Words() = %v, want %v (sorted)", got, words)
	}
}

func TestCacheSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords.db")
	ctx := context.Background()

	st, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.PutWords(ctx, "src", []string{"the"}, time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	st, err = Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	got, ok, err := st.Words(ctx, "src")
	if err != nil || !ok {
		t.Fatalf("Words() after reopen = ok=%v err=%v, want hit", ok, err)
	}
	if !reflect.DeepEqual(got, []string{"the"}) {
		t.Errorf("Words() = %v", got)
	}
}

func TestPutReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords.db")
	ctx := context.Background()

	st, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	if err := st.PutWords(ctx, "src", []string{"old", "stale"}, time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := st.PutWords(ctx, "src", []string{"fresh"}, time.Now()); err != nil {
		t.Fatal(err)
	}

	got, _, err := st.Words(ctx, "src")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"fresh"}) {
		t.Errorf("Words() = %v, want old rows replaced", got)
	}
}

func TestSourcesAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords.db")
	ctx := context.Background()

	st, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	if err := st.PutWords(ctx, "a", []string{"alpha"}, time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := st.PutWords(ctx, "b", []string{"beta"}, time.Now()); err != nil {
		t.Fatal(err)
	}

	got, _, _ := st.Words(ctx, "a")
	if !reflect.DeepEqual(got, []string{"alpha"}) {
		t.Errorf("Words(a) = %v", got)
	}
}
