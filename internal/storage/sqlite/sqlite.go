// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/storage"
)

// DefaultKey is the document key used when none is configured.
const DefaultKey = "family-meal-planner-data"

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
// Each store reads and writes a single row selected by its key.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

// New creates a new SQLiteStore with the given database path and document key.
// It creates the parent directories and runs migrations automatically.
func New(dbPath, key string) (*SQLiteStore, error) {
	if key == "" {
		key = DefaultKey
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db, key: key}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the snapshot for the store's key and verifies its checksum.
func (s *SQLiteStore) Load(ctx context.Context) (models.Document, error) {
	var data, sum string
	err := s.db.QueryRowContext(ctx,
		"SELECT data, checksum FROM documents WHERE key = ?",
		s.key,
	).Scan(&data, &sum)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, storage.ErrNoDocument
	}
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to load document: %w", err)
	}

	if checksum([]byte(data)) != sum {
		return models.Document{}, fmt.Errorf("%w: checksum mismatch for key %s", storage.ErrMalformedDocument, s.key)
	}
	return storage.Decode([]byte(data))
}

// Save replaces the snapshot for the store's key.
func (s *SQLiteStore) Save(ctx context.Context, doc models.Document) error {
	data, err := storage.Encode(doc)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (key, data, checksum, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, checksum = excluded.checksum, updated_at = excluded.updated_at`,
		s.key, string(data), checksum(data), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Clear deletes the snapshot for the store's key.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE key = ?", s.key); err != nil {
		return fmt.Errorf("failed to clear document: %w", err)
	}
	return nil
}

func checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
