// Package metrics defines the Prometheus collectors recorded by the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mmynk/mealplanner/internal/models"
)

const namespace = "mealplanner"

// Outcome labels the result of a mutation.
type Outcome string

const (
	OutcomeOK            Outcome = "ok"
	OutcomeInvalid       Outcome = "invalid"
	OutcomeNotFound      Outcome = "not_found"
	OutcomePersistFailed Outcome = "persist_failed"
	OutcomeError         Outcome = "error"
)

// Metrics holds the collectors. A nil *Metrics records nothing.
type Metrics struct {
	mutations       *prometheus.CounterVec
	persistDuration prometheus.Histogram
	persistFailures prometheus.Counter
	entities        *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Document mutations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		persistDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "persist_duration_seconds",
			Help:      "Time spent saving the document snapshot.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		persistFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "Failed document saves.",
		}),
		entities: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "document_entities",
			Help:      "Number of entities in the current document by kind.",
		}, []string{"kind"}),
	}
}

// ObserveMutation counts one mutation attempt.
func (m *Metrics) ObserveMutation(operation string, outcome Outcome) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(operation, string(outcome)).Inc()
}

// ObservePersist records a save that took d and failed when err is non-nil.
func (m *Metrics) ObservePersist(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.persistDuration.Observe(d.Seconds())
	if err != nil {
		m.persistFailures.Inc()
	}
}

// SetDocument updates the entity gauges from doc.
func (m *Metrics) SetDocument(doc models.Document) {
	if m == nil {
		return
	}
	m.entities.WithLabelValues("meals").Set(float64(len(doc.Meals)))
	m.entities.WithLabelValues("week_plans").Set(float64(len(doc.WeekPlans)))
	m.entities.WithLabelValues("hellofresh_recipes").Set(float64(len(doc.HelloFreshRecipes)))
	m.entities.WithLabelValues("shopping_items").Set(float64(len(doc.ShoppingListItems)))
	m.entities.WithLabelValues("tried_foods").Set(float64(len(doc.PickyEater.TriedFoods)))
}
