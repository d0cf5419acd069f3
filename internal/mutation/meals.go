package mutation

import (
	"fmt"
	"slices"

	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/validation"
)

// MealInput holds the user-editable fields of a meal.
type MealInput struct {
	Name          string
	Description   string
	Ingredients   []models.Ingredient
	Servings      int
	PrepTime      *int
	CookTime      *int
	Category      models.Category
	Rating        *int
	Cost          *float64
	Notes         string
	NutritionInfo *models.NutritionInfo
	IsHelloFresh  bool
	HelloFreshID  string
}

// toMeal builds a meal from in without an ID. Ingredients are copied.
func (in MealInput) toMeal() models.Meal {
	m := models.Meal{
		Name:          in.Name,
		Description:   in.Description,
		Ingredients:   slices.Clone(in.Ingredients),
		Servings:      in.Servings,
		PrepTime:      in.PrepTime,
		CookTime:      in.CookTime,
		Category:      in.Category.OrDefault(),
		Rating:        in.Rating,
		Cost:          in.Cost,
		Notes:         in.Notes,
		NutritionInfo: in.NutritionInfo,
		IsHelloFresh:  in.IsHelloFresh,
		HelloFreshID:  in.HelloFreshID,
	}
	if m.Ingredients == nil {
		m.Ingredients = []models.Ingredient{}
	}
	return m.Clone()
}

func (m *Mutator) assignIngredientIDs(ingredients []models.Ingredient) {
	for i := range ingredients {
		if ingredients[i].ID == "" {
			ingredients[i].ID = m.newID()
		}
	}
}

// AddMeal appends a new meal with a fresh ID and TimesCooked 0.
func (m *Mutator) AddMeal(doc models.Document, in MealInput) (models.Document, string, error) {
	meal := in.toMeal()
	if err := validation.MealError(meal); err != nil {
		return doc, "", err
	}

	meal.ID = m.newID()
	meal.TimesCooked = 0
	m.assignIngredientIDs(meal.Ingredients)

	doc.Meals = appended(doc.Meals, meal)
	return doc, meal.ID, nil
}

// UpdateMeal replaces the editable fields of meal id. The ID, cooking
// history and any ingredient IDs supplied by the caller are kept.
func (m *Mutator) UpdateMeal(doc models.Document, id string, in MealInput) (models.Document, error) {
	i := slices.IndexFunc(doc.Meals, func(meal models.Meal) bool { return meal.ID == id })
	if i < 0 {
		return doc, fmt.Errorf("meal %s: %w", id, ErrNotFound)
	}
	existing := doc.Meals[i]

	meal := in.toMeal()
	meal.ID = existing.ID
	meal.TimesCooked = existing.TimesCooked
	meal.LastCooked = existing.LastCooked
	if err := validation.MealError(meal); err != nil {
		return doc, err
	}
	m.assignIngredientIDs(meal.Ingredients)

	doc.Meals = replaced(doc.Meals, i, meal)
	return doc, nil
}

// DeleteMeal removes meal id and unassigns every week plan slot that
// referenced it. Plans without a reference are left untouched.
func (m *Mutator) DeleteMeal(doc models.Document, id string) (models.Document, error) {
	i := slices.IndexFunc(doc.Meals, func(meal models.Meal) bool { return meal.ID == id })
	if i < 0 {
		return doc, fmt.Errorf("meal %s: %w", id, ErrNotFound)
	}

	doc.Meals = removed(doc.Meals, i)

	plans := make([]models.WeekPlan, len(doc.WeekPlans))
	for j, p := range doc.WeekPlans {
		plans[j] = stripMeal(p, id)
	}
	doc.WeekPlans = plans
	return doc, nil
}

// stripMeal returns p without any slot referencing mealID.
// p itself is returned when it has no such slot.
func stripMeal(p models.WeekPlan, mealID string) models.WeekPlan {
	if !slices.Contains(p.MealRefs(), mealID) {
		return p
	}
	out := p.Clone()
	for day, slots := range out.Meals {
		for slot, id := range slots {
			if id == mealID {
				delete(slots, slot)
			}
		}
		if len(slots) == 0 {
			delete(out.Meals, day)
		}
	}
	return out
}

// MarkMealCooked records that meal id was cooked now.
func (m *Mutator) MarkMealCooked(doc models.Document, id string) (models.Document, error) {
	i := slices.IndexFunc(doc.Meals, func(meal models.Meal) bool { return meal.ID == id })
	if i < 0 {
		return doc, fmt.Errorf("meal %s: %w", id, ErrNotFound)
	}

	meal := doc.Meals[i].Clone()
	meal.TimesCooked++
	now := m.timestamp()
	meal.LastCooked = &now

	doc.Meals = replaced(doc.Meals, i, meal)
	return doc, nil
}
