package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Store owns the single physical SQLite handle for the process. Every
// operation acquires the mutex for its whole statement sequence, so
// multi-statement operations (toggle-completion, complete-then-bump) are
// atomic with respect to every other caller. Share a Store by pointer; the
// handle itself is never duplicated.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One connection for the process lifetime, closed at exit.
	db.SetMaxOpenConns(1)

	// SQLite ships with foreign keys off.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

// acquire takes exclusive access to the handle for one operation. The
// returned release must run before the operation returns; nothing may hold
// the store across calls.
func (s *Store) acquire() (release func(), err error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrAccessUnavailable
	}
	return s.mu.Unlock, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// DefaultDBPath returns ~/.config/tomatotask/tomatotask.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "tomatotask", "tomatotask.db"), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
