// Package db persists timeline chapters, their social annotations, and the
// landing-page waitlist in a local SQLite database.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const (
	dbFile          = ".retro/timeline.db"
	eventIDPrefix   = "ev-"
	commentIDPrefix = "cm-"
)

// DB wraps the database connection
type DB struct {
	conn    *sql.DB
	baseDir string
}

// NewEventID returns a fresh prefixed event id.
func NewEventID() string {
	return eventIDPrefix + uuid.NewString()
}

// NewCommentID returns a fresh prefixed comment id.
func NewCommentID() string {
	return commentIDPrefix + uuid.NewString()
}

// NormalizeEventID ensures an event ID has the ev- prefix.
// Accepts bare ids like "abc123" and returns "ev-abc123".
func NormalizeEventID(id string) string {
	if id == "" {
		return id
	}
	if !strings.HasPrefix(id, eventIDPrefix) {
		return eventIDPrefix + id
	}
	return id
}

// Open opens the database created by a prior Init.
func Open(baseDir string) (*DB, error) {
	dbPath := filepath.Join(baseDir, dbFile)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("database not found: run 'retro init' first")
	}

	return open(baseDir, dbPath)
}

// Init creates the database directory and schema. Calling it on an
// existing database is a no-op beyond re-applying the schema.
func Init(baseDir string) (*DB, error) {
	dbPath := filepath.Join(baseDir, dbFile)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return open(baseDir, dbPath)
}

func open(baseDir, dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL allows concurrent reads while writes are serialized
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	db := &DB{conn: conn, baseDir: baseDir}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// BaseDir returns the directory the database lives under.
func (db *DB) BaseDir() string {
	return db.baseDir
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		date         TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		cover_url    TEXT NOT NULL DEFAULT '',
		gallery      TEXT NOT NULL DEFAULT '[]',
		location     TEXT NOT NULL DEFAULT '',
		tags         TEXT NOT NULL DEFAULT '[]',
		is_milestone INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now')),
		updated_at   TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	);

	CREATE TABLE IF NOT EXISTS reactions (
		event_id    TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		reaction_id TEXT NOT NULL,
		emoji       TEXT NOT NULL DEFAULT '',
		count       INTEGER NOT NULL DEFAULT 0,
		reacted     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (event_id, reaction_id)
	);

	CREATE TABLE IF NOT EXISTS comments (
		id         TEXT PRIMARY KEY,
		event_id   TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		author     TEXT NOT NULL,
		message    TEXT NOT NULL,
		date       TEXT NOT NULL DEFAULT '',
		avatar_url TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	);
	CREATE INDEX IF NOT EXISTS idx_comments_event ON comments(event_id);

	CREATE TABLE IF NOT EXISTS waitlist (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		email      TEXT NOT NULL UNIQUE,
		promo      TEXT NOT NULL DEFAULT '',
		source     TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
