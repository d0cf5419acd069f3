package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/mealplanner/internal/models"
)

func TestObserveMutation(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveMutation("add_meal", OutcomeOK)
	m.ObserveMutation("add_meal", OutcomeOK)
	m.ObserveMutation("add_meal", OutcomeInvalid)

	if got := testutil.ToFloat64(m.mutations.WithLabelValues("add_meal", "ok")); got != 2 {
		t.Errorf("ok count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.mutations.WithLabelValues("add_meal", "invalid")); got != 1 {
		t.Errorf("invalid count = %v, want 1", got)
	}
}

func TestObservePersist(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObservePersist(3*time.Millisecond, nil)
	m.ObservePersist(time.Millisecond, errors.New("disk full"))

	if got := testutil.ToFloat64(m.persistFailures); got != 1 {
		t.Errorf("failures = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(m.persistDuration); n != 1 {
		t.Errorf("histogram series = %d, want 1", n)
	}
}

func TestSetDocument(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	doc := models.NewDocument()
	doc.Meals = []models.Meal{{ID: "a"}, {ID: "b"}}
	m.SetDocument(doc)

	want := `
# HELP mealplanner_document_entities Number of entities in the current document by kind.
# TYPE mealplanner_document_entities gauge
mealplanner_document_entities{kind="hellofresh_recipes"} 0
mealplanner_document_entities{kind="meals"} 2
mealplanner_document_entities{kind="shopping_items"} 0
mealplanner_document_entities{kind="tried_foods"} 0
mealplanner_document_entities{kind="week_plans"} 0
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want), "mealplanner_document_entities"); err != nil {
		t.Error(err)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveMutation("add_meal", OutcomeOK)
	m.ObservePersist(time.Second, nil)
	m.SetDocument(models.NewDocument())
}
