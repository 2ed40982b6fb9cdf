// Package sqlite provides a SQLite-backed implementation of storage.Ledger.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/eatsplit/internal/storage"
)

// MemoryDSN opens a private in-memory database that lives as long as the
// process.
const MemoryDSN = ":memory:"

// Ensure SQLiteStore implements storage.Ledger
var _ storage.Ledger = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Ledger using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens the ledger at dsn and runs migrations. A file path gets its
// parent directory created first.
func New(dsn string) (*SQLiteStore, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	if !isMemory(dsn) {
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Each connection to :memory: is a separate database, so pin the pool
	// to one connection.
	if isMemory(dsn) {
		db.SetMaxOpenConns(1)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func isMemory(dsn string) bool {
	return dsn == MemoryDSN || strings.Contains(dsn, "mode=memory")
}
