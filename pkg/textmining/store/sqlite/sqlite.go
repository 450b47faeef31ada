package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite-backed stopword cache with WAL
// mode enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS sources (
	source TEXT PRIMARY KEY,
	fetched_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS stopwords (
	source TEXT NOT NULL,
	word TEXT NOT NULL,
	PRIMARY KEY(source, word),
	FOREIGN KEY(source) REFERENCES sources(source) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Words implements store.Store.
func (s *sqliteStore) Words(ctx context.Context, source string) ([]string, bool, error) {
	var fetchedAt string
	err := s.db.QueryRowContext(ctx,
		"SELECT fetched_at FROM sources WHERE source = ?", source,
	).Scan(&fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT word FROM stopwords WHERE source = ? ORDER BY word", source)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, false, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return words, true, nil
}

// PutWords implements store.Store.
func (s *sqliteStore) PutWords(ctx context.Context, source string, words []string, fetchedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO sources(source, fetched_at) VALUES(?, ?) ON CONFLICT(source) DO UPDATE SET fetched_at = excluded.fetched_at",
		source, fetchedAt.UTC().Format(time.RFC3339),
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM stopwords WHERE source = ?", source,
	); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO stopwords(source, word) VALUES(?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range words {
		if _, err := stmt.ExecContext(ctx, source, w); err != nil {
			return err
		}
	}

	return tx.Commit()
}
