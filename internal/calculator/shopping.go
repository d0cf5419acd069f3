package calculator

import "github.com/mmynk/mealplanner/internal/models"

// UncategorizedLabel groups shopping items without a category.
const UncategorizedLabel = "Sonstige"

// IDFunc produces a fresh unique ID for a generated shopping list line.
type IDFunc func() string

// lineKey identifies a shopping list line. Matching is exact and case-sensitive.
type lineKey struct {
	name string
	unit string
}

// MealsForWeek returns the distinct meals planned in the week starting at
// weekStart, in calendar then slot order. Dangling meal IDs are skipped.
func MealsForWeek(weekStart string, doc models.Document) []models.Meal {
	plan, ok := doc.FindWeekPlan(weekStart)
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var meals []models.Meal
	for _, id := range plan.MealRefs() {
		if seen[id] {
			continue
		}
		seen[id] = true
		if meal, ok := doc.FindMeal(id); ok {
			meals = append(meals, meal)
		}
	}
	return meals
}

// GenerateShoppingList derives the shopping list for the week starting at weekStart.
//
// Algorithm:
//   - Walk every planned (day, slot) in calendar order; a meal planned N times
//     contributes its ingredients N times
//   - Merge ingredients into lines keyed by exact (name, unit), summing amounts
//   - Each meal appears at most once in a line's MealIDs
//   - Lines keep the order in which they were first seen
//
// An unplanned week yields an empty list. The document is not modified and
// existing shopping list items are ignored. newID may be nil, leaving IDs empty.
func GenerateShoppingList(weekStart string, doc models.Document, newID IDFunc) []models.ShoppingListItem {
	items := []models.ShoppingListItem{}

	plan, ok := doc.FindWeekPlan(weekStart)
	if !ok {
		return items
	}

	meals := make(map[string]models.Meal, len(doc.Meals))
	for _, m := range doc.Meals {
		if _, exists := meals[m.ID]; !exists {
			meals[m.ID] = m
		}
	}

	index := make(map[lineKey]int)
	for _, mealID := range plan.MealRefs() {
		meal, ok := meals[mealID]
		if !ok {
			continue
		}

		for _, ing := range meal.Ingredients {
			key := lineKey{name: ing.Name, unit: ing.Unit}
			if i, exists := index[key]; exists {
				line := &items[i]
				line.Amount += ing.Amount
				if !containsID(line.MealIDs, meal.ID) {
					line.MealIDs = append(line.MealIDs, meal.ID)
				}
				continue
			}

			var id string
			if newID != nil {
				id = newID()
			}
			index[key] = len(items)
			items = append(items, models.ShoppingListItem{
				ID:           id,
				IngredientID: ing.ID,
				Name:         ing.Name,
				Amount:       ing.Amount,
				Unit:         ing.Unit,
				Category:     ing.Category,
				Supermarket:  ing.Supermarket.OrDefault(),
				Checked:      false,
				MealIDs:      []string{meal.ID},
			})
		}
	}

	return items
}

// Group is one labelled partition of a shopping list.
type Group struct {
	Label string
	Items []models.ShoppingListItem
}

// Grouping maps labels to items and remembers the order labels first appeared in.
type Grouping struct {
	Labels []string
	Items  map[string][]models.ShoppingListItem
}

// Groups returns the partitions in label order.
func (g Grouping) Groups() []Group {
	out := make([]Group, 0, len(g.Labels))
	for _, label := range g.Labels {
		out = append(out, Group{Label: label, Items: g.Items[label]})
	}
	return out
}

// GroupBySupermarket partitions items by supermarket, keeping relative order.
func GroupBySupermarket(items []models.ShoppingListItem) Grouping {
	return groupBy(items, func(item models.ShoppingListItem) string {
		return string(item.Supermarket.OrDefault())
	})
}

// GroupByCategory partitions items by category. Items without one land
// under UncategorizedLabel.
func GroupByCategory(items []models.ShoppingListItem) Grouping {
	return groupBy(items, func(item models.ShoppingListItem) string {
		if item.Category == "" {
			return UncategorizedLabel
		}
		return item.Category
	})
}

// FilterBySupermarket returns the items bought at s, in order.
func FilterBySupermarket(items []models.ShoppingListItem, s models.Supermarket) []models.ShoppingListItem {
	out := []models.ShoppingListItem{}
	for _, item := range items {
		if item.Supermarket.OrDefault() == s {
			out = append(out, item.Clone())
		}
	}
	return out
}

func groupBy(items []models.ShoppingListItem, label func(models.ShoppingListItem) string) Grouping {
	g := Grouping{Items: make(map[string][]models.ShoppingListItem)}
	for _, item := range items {
		l := label(item)
		if _, exists := g.Items[l]; !exists {
			g.Labels = append(g.Labels, l)
		}
		g.Items[l] = append(g.Items[l], item.Clone())
	}
	return g
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
