// Package mutation produces new Document versions from an old one plus a change.
//
// No operation writes into the Document it receives: changed collections are
// copied, unchanged ones are shared. Payloads are checked by the validation
// package before any new version is built; on error the caller keeps the
// old Document.
package mutation

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when an operation targets an ID that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateWeek is returned when adding a plan for a week that already has one.
	ErrDuplicateWeek = errors.New("week plan already exists")
)

// Mutator applies changes to documents. It owns ID and timestamp assignment.
type Mutator struct {
	newID func() string
	now   func() time.Time
}

// Option configures a Mutator.
type Option func(*Mutator)

// WithIDs replaces the ID generator (default: random UUIDs).
func WithIDs(newID func() string) Option {
	return func(m *Mutator) { m.newID = newID }
}

// WithClock replaces the clock (default: time.Now).
func WithClock(now func() time.Time) Option {
	return func(m *Mutator) { m.now = now }
}

// New creates a Mutator.
func New(opts ...Option) *Mutator {
	m := &Mutator{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewID returns a fresh unique ID.
func (m *Mutator) NewID() string {
	return m.newID()
}

func (m *Mutator) timestamp() time.Time {
	return m.now().UTC()
}

// appended returns a new slice holding s followed by v.
func appended[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

// replaced returns a copy of s with element i set to v.
func replaced[T any](s []T, i int, v T) []T {
	out := slices.Clone(s)
	out[i] = v
	return out
}

// removed returns a copy of s without element i.
func removed[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
