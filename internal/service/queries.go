package service

import (
	"github.com/mmynk/mealplanner/internal/calculator"
	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/storage"
)

// CurrentWeekStart returns the Monday of the current week.
func (p *Planner) CurrentWeekStart() string {
	return models.WeekStartOf(p.now())
}

// WeekPlan returns the plan for the week containing date, or an unsaved
// empty one. Looking a week up never stores anything.
func (p *Planner) WeekPlan(date string) (models.WeekPlan, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mutator.GetOrCreateWeekPlan(p.doc, date)
}

// MealsForWeek returns the distinct meals planned in the week containing date.
func (p *Planner) MealsForWeek(date string) ([]models.Meal, error) {
	weekStart, err := models.NormalizeWeekStart(date)
	if err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	meals := calculator.MealsForWeek(weekStart, p.doc)
	for i := range meals {
		meals[i] = meals[i].Clone()
	}
	return meals, nil
}

// PreviewShoppingList derives the list for the week containing date
// without storing it.
func (p *Planner) PreviewShoppingList(date string) ([]models.ShoppingListItem, error) {
	weekStart, err := models.NormalizeWeekStart(date)
	if err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return calculator.GenerateShoppingList(weekStart, p.doc, p.mutator.NewID), nil
}

// ShoppingList returns the stored shopping list.
func (p *Planner) ShoppingList() []models.ShoppingListItem {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return cloneItems(p.doc.ShoppingListItems)
}

// ShoppingListBySupermarket groups the stored list by store.
func (p *Planner) ShoppingListBySupermarket() calculator.Grouping {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return calculator.GroupBySupermarket(p.doc.ShoppingListItems)
}

// ShoppingListByCategory groups the stored list by category.
func (p *Planner) ShoppingListByCategory() calculator.Grouping {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return calculator.GroupByCategory(p.doc.ShoppingListItems)
}

// ShoppingListFor returns the stored lines to buy at s.
func (p *Planner) ShoppingListFor(s models.Supermarket) []models.ShoppingListItem {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return calculator.FilterBySupermarket(p.doc.ShoppingListItems, s)
}

// MealStats aggregates the meal library.
func (p *Planner) MealStats() calculator.MealStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return calculator.ComputeMealStats(p.doc)
}

// PickyEaterStats aggregates the child's tasting log and preference lists.
func (p *Planner) PickyEaterStats() calculator.PickyEaterStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return calculator.ComputePickyEaterStats(p.doc)
}

// HelloFreshStats aggregates imported HelloFresh recipes.
func (p *Planner) HelloFreshStats() calculator.HelloFreshStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return calculator.ComputeHelloFreshStats(p.doc)
}

// MostUsedIngredients ranks ingredient names by the number of meals using them.
func (p *Planner) MostUsedIngredients(limit int) []calculator.IngredientCount {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return calculator.MostUsedIngredients(p.doc, limit)
}

// Export returns the current document as re-importable text.
func (p *Planner) Export() (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return storage.ExportText(p.doc)
}
