package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"promptbuilder/internal/domain"
	"promptbuilder/internal/ports"
)

const schemaVersion = "1"

// StateKey is the record holding the last widget snapshot
const StateKey = "promptBuilderState"

const metaSessionSavedAt = "session_saved_at"

// Store implements ports.SettingsStore using SQLite. It also keeps the last
// session snapshot so a restarted widget can restore it.
type Store struct {
	db   *sql.DB
	path string
}

// Ensure Store implements SettingsStore and SnapshotChannel
var (
	_ ports.SettingsStore   = (*Store)(nil)
	_ ports.SnapshotChannel = (*Store)(nil)
)

// Open opens or creates the database at path
func Open(path string) (*Store, error) {
	// Expand ~ in path
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	// WAL mode lets the TUI and the server share one file
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.setMeta(db, "schema_version", schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file location
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set replaces the value stored under key
func (s *Store) Set(key, value string) error {
	if err := setKV(s.db, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// SaveSession stores snapshot and the time it was taken in one transaction
func (s *Store) SaveSession(snapshot domain.Snapshot) error {
	encoded, err := domain.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	return s.Update(func(tx *storeTx) error {
		if err := tx.Set(StateKey, string(encoded)); err != nil {
			return err
		}
		return tx.SetMeta(metaSessionSavedAt, time.Now().UTC().Format(time.RFC3339))
	})
}

// LoadSession returns the saved snapshot, if any
func (s *Store) LoadSession() (domain.Snapshot, bool, error) {
	raw, ok, err := s.Get(StateKey)
	if err != nil || !ok {
		return domain.Snapshot{}, false, err
	}
	snapshot, err := domain.DecodeSnapshot([]byte(raw))
	if err != nil {
		return domain.Snapshot{}, false, err
	}
	return snapshot, true, nil
}

// SessionSavedAt returns when the session was last saved
func (s *Store) SessionSavedAt() (time.Time, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, metaSessionSavedAt).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse session time: %w", err)
	}
	return t, true, nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func setKV(db execer, key, value string) error {
	_, err := db.Exec(`
		INSERT OR REPLACE INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
	`, key, value, time.Now().Unix())
	return err
}

func (s *Store) setMeta(db execer, key, value string) error {
	_, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

// Publish saves the snapshot as the current session, so the store can sit
// on the widget's snapshot channel
func (s *Store) Publish(_ context.Context, snapshot domain.Snapshot) error {
	return s.SaveSession(snapshot)
}
