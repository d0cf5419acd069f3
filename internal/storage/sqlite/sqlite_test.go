package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/storage"
)

func newTestStore(t *testing.T, dbPath, key string) *SQLiteStore {
	t.Helper()
	store, err := New(dbPath, key)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testDocument() models.Document {
	doc := models.NewDocument()
	doc.Meals = []models.Meal{{
		ID:          "m1",
		Name:        "Pfannkuchen",
		Servings:    3,
		Category:    models.CategoryBreakfast,
		Ingredients: []models.Ingredient{{ID: "i1", Name: "Mehl", Amount: 250, Unit: "g"}},
	}}
	doc.PickyEater.ChildName = "Lea"
	return doc
}

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	store := newTestStore(t, dbPath, "")
	ctx := context.Background()

	t.Run("Load on empty store", func(t *testing.T) {
		if _, err := store.Load(ctx); !errors.Is(err, storage.ErrNoDocument) {
			t.Errorf("Load() error = %v, want ErrNoDocument", err)
		}
	})

	t.Run("Save then Load round trips", func(t *testing.T) {
		want := testDocument()
		if err := store.Save(ctx, want); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Load() = %+v, want %+v", got, want)
		}
	})

	t.Run("Save overwrites previous snapshot", func(t *testing.T) {
		doc := testDocument()
		doc.Meals = []models.Meal{}
		if err := store.Save(ctx, doc); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got.Meals) != 0 {
			t.Errorf("expected 0 meals, got %d", len(got.Meals))
		}

		var rows int
		if err := store.db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&rows); err != nil {
			t.Fatal(err)
		}
		if rows != 1 {
			t.Errorf("expected 1 row, got %d", rows)
		}
	})

	t.Run("tampered data fails checksum", func(t *testing.T) {
		if err := store.Save(ctx, testDocument()); err != nil {
			t.Fatal(err)
		}
		_, err := store.db.Exec(`UPDATE documents SET data = replace(data, 'Pfannkuchen', 'Waffeln') WHERE key = ?`, DefaultKey)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := store.Load(ctx); !errors.Is(err, storage.ErrMalformedDocument) {
			t.Errorf("Load() error = %v, want ErrMalformedDocument", err)
		}
	})

	t.Run("wrong shape is malformed", func(t *testing.T) {
		data := `{"meals":[]}`
		_, err := store.db.Exec(`UPDATE documents SET data = ?, checksum = ? WHERE key = ?`, data, checksum([]byte(data)), DefaultKey)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := store.Load(ctx); !errors.Is(err, storage.ErrMalformedDocument) {
			t.Errorf("Load() error = %v, want ErrMalformedDocument", err)
		}
	})

	t.Run("Clear removes snapshot", func(t *testing.T) {
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		if _, err := store.Load(ctx); !errors.Is(err, storage.ErrNoDocument) {
			t.Errorf("Load() after Clear error = %v, want ErrNoDocument", err)
		}
		if err := store.Clear(ctx); err != nil {
			t.Errorf("second Clear failed: %v", err)
		}
	})
}

func TestSQLiteStoreKeysAreIsolated(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	first := newTestStore(t, dbPath, "first")
	second := newTestStore(t, dbPath, "second")
	ctx := context.Background()

	if err := first.Save(ctx, testDocument()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := second.Load(ctx); !errors.Is(err, storage.ErrNoDocument) {
		t.Errorf("second.Load() error = %v, want ErrNoDocument", err)
	}

	reopened := newTestStore(t, dbPath, "first")
	got, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if got.PickyEater.ChildName != "Lea" {
		t.Errorf("ChildName = %q, want Lea", got.PickyEater.ChildName)
	}
}
