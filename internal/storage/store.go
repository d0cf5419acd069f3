// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/mealplanner/internal/models"
)

var (
	// ErrNoDocument is returned by Load when nothing has been saved yet.
	ErrNoDocument = errors.New("no stored document")

	// ErrMalformedDocument is returned when stored or imported data fails
	// the document shape check.
	ErrMalformedDocument = errors.New("malformed document")
)

// Store persists the single current document snapshot.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// Load returns the stored document. It returns ErrNoDocument when the
	// store is empty and an error wrapping ErrMalformedDocument when the
	// stored data cannot be trusted.
	Load(ctx context.Context) (models.Document, error)

	// Save replaces the stored snapshot with doc.
	Save(ctx context.Context, doc models.Document) error

	// Clear removes the stored snapshot. Clearing an empty store is not an error.
	Clear(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
