// Package service holds the current document and routes every change
// through the mutation layer and the store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/mealplanner/internal/metrics"
	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/mutation"
	"github.com/mmynk/mealplanner/internal/storage"
	"github.com/mmynk/mealplanner/internal/validation"
)

// ErrPersist is returned when a change was applied in memory but could not
// be saved. The in-memory document stays current; call Persist to retry.
var ErrPersist = errors.New("failed to persist document")

// Planner owns the current document. Reads return copies; writes replace
// the document with a new version and save it.
type Planner struct {
	mu      sync.RWMutex
	doc     models.Document
	unsaved bool

	store   storage.Store
	mutator *mutation.Mutator
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option configures a Planner.
type Option func(*Planner)

// WithMutator replaces the default mutator, e.g. to fix IDs and time in tests.
func WithMutator(m *mutation.Mutator) Option {
	return func(p *Planner) { p.mutator = m }
}

// WithMetrics records mutations and saves into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Planner) { p.metrics = m }
}

// WithClock sets the clock used for the current week.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// NewPlanner loads the stored document. A missing or malformed snapshot
// yields the default document; only a failing store is an error.
func NewPlanner(ctx context.Context, store storage.Store, logger *slog.Logger, opts ...Option) (*Planner, error) {
	p := &Planner{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.mutator == nil {
		p.mutator = mutation.New(mutation.WithClock(p.now))
	}

	doc, err := store.Load(ctx)
	switch {
	case err == nil:
		p.logger.Info("Document loaded", "meals", len(doc.Meals), "week_plans", len(doc.WeekPlans))
	case errors.Is(err, storage.ErrNoDocument):
		p.logger.Info("No stored document, starting empty")
		doc = models.NewDocument()
	case errors.Is(err, storage.ErrMalformedDocument):
		p.logger.Warn("Stored document is malformed, starting empty", "error", err)
		doc = models.NewDocument()
	default:
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	p.doc = doc
	p.metrics.SetDocument(doc)
	return p, nil
}

// Document returns a deep copy of the current document.
func (p *Planner) Document() models.Document {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.doc.Clone()
}

// Unsaved reports whether the last save failed.
func (p *Planner) Unsaved() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.unsaved
}

// Persist saves the current document again.
func (p *Planner) Persist(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.save(ctx, "persist")
}

// Reset deletes the stored snapshot and starts over with the default document.
func (p *Planner) Reset(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.doc = models.NewDocument()
	p.metrics.SetDocument(p.doc)
	if err := p.store.Clear(ctx); err != nil {
		p.unsaved = true
		p.logger.Error("Failed to clear stored document", "error", err)
		p.metrics.ObserveMutation("reset", metrics.OutcomePersistFailed)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	p.unsaved = false
	p.logger.Info("Document reset")
	p.metrics.ObserveMutation("reset", metrics.OutcomeOK)
	return nil
}

// apply replaces the document with fn's result and saves it. When fn fails
// the document is left as it was.
func (p *Planner) apply(ctx context.Context, op string, fn func(models.Document) (models.Document, error), attrs ...any) error {
	start := time.Now()
	p.mu.Lock()
	defer p.mu.Unlock()

	next, err := fn(p.doc)
	if err != nil {
		outcome := classify(err)
		p.metrics.ObserveMutation(op, outcome)
		p.logger.Warn("Mutation rejected",
			append([]any{"operation", op, "outcome", outcome, "error", err}, attrs...)...,
		)
		return err
	}

	p.doc = next
	p.metrics.SetDocument(next)
	if err := p.save(ctx, op); err != nil {
		p.metrics.ObserveMutation(op, metrics.OutcomePersistFailed)
		return err
	}

	p.metrics.ObserveMutation(op, metrics.OutcomeOK)
	p.logger.Info("Mutation applied",
		append([]any{"operation", op, "duration_ms", time.Since(start).Milliseconds()}, attrs...)...,
	)
	return nil
}

// save writes p.doc to the store. The caller holds p.mu.
func (p *Planner) save(ctx context.Context, op string) error {
	start := time.Now()
	err := p.store.Save(ctx, p.doc)
	p.metrics.ObservePersist(time.Since(start), err)
	if err != nil {
		p.unsaved = true
		p.logger.Error("Failed to save document", "operation", op, "error", err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	p.unsaved = false
	return nil
}

func classify(err error) metrics.Outcome {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr),
		errors.Is(err, mutation.ErrDuplicateWeek),
		errors.Is(err, storage.ErrMalformedDocument):
		return metrics.OutcomeInvalid
	case errors.Is(err, mutation.ErrNotFound):
		return metrics.OutcomeNotFound
	}
	return metrics.OutcomeError
}
