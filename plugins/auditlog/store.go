package auditlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded dispatch outcome.
type Entry struct {
	ID        string
	Hook      string
	Category  string
	Key       string
	UserID    string
	ChannelID string
	Error     string
	CreatedAt time.Time
}

// Store persists dispatch audit entries in SQLite.
type Store struct {
	db *sql.DB
}

// OpenStore opens (and creates if needed) the audit database at path and
// ensures the audit table exists.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("audit db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create audit db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(pctx, "PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign_keys: %w", err)
	}
	if _, err := db.ExecContext(pctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS dispatch_audit (
  id         TEXT PRIMARY KEY,
  hook       TEXT NOT NULL,
  category   TEXT NOT NULL,
  key        TEXT NOT NULL,
  user_id    TEXT,
  channel_id TEXT,
  error      TEXT,
  created_at TEXT NOT NULL
);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap audit table: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS dispatch_audit_created_at_idx ON dispatch_audit(created_at);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap audit index: %w", err)
	}

	return &Store{db: db}, nil
}

// Insert records one entry.
func (s *Store) Insert(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO dispatch_audit (id, hook, category, key, user_id, channel_id, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		e.ID, e.Hook, e.Category, e.Key, e.UserID, e.ChannelID, e.Error,
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, hook, category, key, user_id, channel_id, error, created_at
		 FROM dispatch_audit ORDER BY created_at DESC LIMIT ?;`, n)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Hook, &e.Category, &e.Key, &e.UserID, &e.ChannelID, &e.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = ts
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
