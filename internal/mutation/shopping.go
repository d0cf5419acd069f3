package mutation

import (
	"fmt"
	"slices"

	"github.com/mmynk/mealplanner/internal/calculator"
	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/validation"
)

// ShoppingItemInput holds the editable fields of a shopping list line.
type ShoppingItemInput struct {
	Name        string
	Amount      float64
	Unit        string
	Category    string
	Supermarket models.Supermarket
}

// RegenerateShoppingList replaces the stored list with one generated from
// the week containing date. Checked flags are not carried over.
func (m *Mutator) RegenerateShoppingList(doc models.Document, date string) (models.Document, error) {
	weekStart, err := models.NormalizeWeekStart(date)
	if err != nil {
		return doc, &validation.Error{Field: "weekStart", Message: err.Error()}
	}
	doc.ShoppingListItems = calculator.GenerateShoppingList(weekStart, doc, m.newID)
	return doc, nil
}

// AddShoppingItem appends a manual line that belongs to no meal.
// It gets its own ingredient ID.
func (m *Mutator) AddShoppingItem(doc models.Document, in ShoppingItemInput) (models.Document, string, error) {
	item := models.ShoppingListItem{MealIDs: []string{}}
	in.applyTo(&item)
	if err := validation.ShoppingListItemError(item); err != nil {
		return doc, "", err
	}
	item.ID = m.newID()
	item.IngredientID = m.newID()

	doc.ShoppingListItems = appended(doc.ShoppingListItems, item)
	return doc, item.ID, nil
}

// UpdateShoppingItem edits line id, keeping its checked flag and meal links.
func (m *Mutator) UpdateShoppingItem(doc models.Document, id string, in ShoppingItemInput) (models.Document, error) {
	i := m.shoppingIndex(doc, id)
	if i < 0 {
		return doc, fmt.Errorf("shopping item %s: %w", id, ErrNotFound)
	}

	item := doc.ShoppingListItems[i].Clone()
	in.applyTo(&item)
	if err := validation.ShoppingListItemError(item); err != nil {
		return doc, err
	}

	doc.ShoppingListItems = replaced(doc.ShoppingListItems, i, item)
	return doc, nil
}

// ToggleShoppingItem flips the checked flag of line id.
func (m *Mutator) ToggleShoppingItem(doc models.Document, id string) (models.Document, error) {
	i := m.shoppingIndex(doc, id)
	if i < 0 {
		return doc, fmt.Errorf("shopping item %s: %w", id, ErrNotFound)
	}

	item := doc.ShoppingListItems[i].Clone()
	item.Checked = !item.Checked

	doc.ShoppingListItems = replaced(doc.ShoppingListItems, i, item)
	return doc, nil
}

// DeleteShoppingItem removes line id.
func (m *Mutator) DeleteShoppingItem(doc models.Document, id string) (models.Document, error) {
	i := m.shoppingIndex(doc, id)
	if i < 0 {
		return doc, fmt.Errorf("shopping item %s: %w", id, ErrNotFound)
	}
	doc.ShoppingListItems = removed(doc.ShoppingListItems, i)
	return doc, nil
}

// ClearShoppingList empties the stored list.
func (m *Mutator) ClearShoppingList(doc models.Document) models.Document {
	doc.ShoppingListItems = []models.ShoppingListItem{}
	return doc
}

// ClearCheckedItems drops every checked line.
func (m *Mutator) ClearCheckedItems(doc models.Document) models.Document {
	kept := make([]models.ShoppingListItem, 0, len(doc.ShoppingListItems))
	for _, item := range doc.ShoppingListItems {
		if !item.Checked {
			kept = append(kept, item)
		}
	}
	doc.ShoppingListItems = kept
	return doc
}

func (m *Mutator) shoppingIndex(doc models.Document, id string) int {
	return slices.IndexFunc(doc.ShoppingListItems, func(item models.ShoppingListItem) bool { return item.ID == id })
}

func (in ShoppingItemInput) applyTo(item *models.ShoppingListItem) {
	item.Name = in.Name
	item.Amount = in.Amount
	item.Unit = in.Unit
	item.Category = in.Category
	item.Supermarket = in.Supermarket.OrDefault()
}
