// Package prefs persists user preferences between sessions in a small SQLite
// database.
package prefs

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// CurrentStylesheetKey holds path of the stylesheet being worked on.
const CurrentStylesheetKey = "_ucss_current_ucss"

// InMemory may be used as path to get a store which is not persisted.
const InMemory = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS prefs (
	key        TEXT PRIMARY KEY NOT NULL,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("preferences store is closed")

// Entry is a single stored preference.
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Store is a key/value preference store. It is safe for concurrent use.
type Store struct {
	log  *zap.Logger
	path string

	mu   sync.Mutex
	conn *sqlite.Conn
}

// Open opens (creating if necessary) preferences database at path.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		conn *sqlite.Conn
		err  error
	)
	if path == InMemory {
		conn, err = sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenMemory)
	} else {
		conn, err = sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate, sqlite.OpenWAL)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open preferences database (%s): %w", path, err)
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to prepare preferences database (%s): %w", path, err)
	}

	s := &Store{log: log.Named("prefs"), path: path, conn: conn}
	s.log.Debug("Preferences opened", zap.String("path", path))
	return s, nil
}

// Path returns database location.
func (s *Store) Path() string {
	return s.path
}

// Get returns value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return "", false, ErrClosed
	}

	var (
		value string
		found bool
	)
	err := sqlitex.Execute(s.conn, `SELECT value FROM prefs WHERE key = ?`,
		&sqlitex.ExecOptions{
			Args: []any{key},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				value, found = stmt.ColumnText(0), true
				return nil
			}})
	if err != nil {
		return "", false, fmt.Errorf("unable to read preference %q: %w", key, err)
	}
	return value, found, nil
}

// Set stores value under key replacing previous one.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return ErrClosed
	}

	err := sqlitex.Execute(s.conn,
		`INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		&sqlitex.ExecOptions{Args: []any{key, value, time.Now().UnixMilli()}})
	if err != nil {
		return fmt.Errorf("unable to store preference %q: %w", key, err)
	}
	s.log.Debug("Preference stored", zap.String("key", key), zap.String("value", value))
	return nil
}

// Delete removes key, missing key is not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return ErrClosed
	}
	if err := sqlitex.Execute(s.conn, `DELETE FROM prefs WHERE key = ?`,
		&sqlitex.ExecOptions{Args: []any{key}}); err != nil {
		return fmt.Errorf("unable to delete preference %q: %w", key, err)
	}
	return nil
}

// Entries returns all stored preferences ordered by key.
func (s *Store) Entries() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil, ErrClosed
	}

	var entries []Entry
	err := sqlitex.Execute(s.conn, `SELECT key, value, updated_at FROM prefs ORDER BY key`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			entries = append(entries, Entry{
				Key:       stmt.ColumnText(0),
				Value:     stmt.ColumnText(1),
				UpdatedAt: time.UnixMilli(stmt.ColumnInt64(2)),
			})
			return nil
		}})
	if err != nil {
		return nil, fmt.Errorf("unable to list preferences: %w", err)
	}
	return entries, nil
}

// CurrentStylesheet returns path of the current stylesheet, empty if none
// was selected.
func (s *Store) CurrentStylesheet() (string, error) {
	path, _, err := s.Get(CurrentStylesheetKey)
	return path, err
}

// SetCurrentStylesheet remembers absolute path of the stylesheet, empty path
// clears selection.
func (s *Store) SetCurrentStylesheet(path string) error {
	if path == "" {
		return s.Delete(CurrentStylesheetKey)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("unable to resolve stylesheet path: %w", err)
	}
	return s.Set(CurrentStylesheetKey, abs)
}

// Close closes the database, it is safe to call Close more than once.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
