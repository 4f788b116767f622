// Package store handles SQLite persistence for attempt history and
// configuration.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps SQLite access for attempts and config.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY,
			num1 INTEGER NOT NULL,
			operation TEXT NOT NULL,
			num2 INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			time_taken REAL NOT NULL,
			typing_time_estimate REAL NOT NULL,
			difficulty INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			session_id TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_operation ON attempts(operation);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_timestamp ON attempts(timestamp);`,
		`CREATE TABLE IF NOT EXISTS config (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			data TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. FASTMATH_DB environment variable
// 2. $XDG_DATA_HOME/fastmath/fastmath.db
// 3. ~/.local/share/fastmath/fastmath.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("FASTMATH_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "fastmath", "fastmath.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
