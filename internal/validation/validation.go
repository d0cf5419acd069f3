// Package validation checks entities before the mutation layer accepts them.
// Checks never panic: they return nil or the first failing rule.
package validation

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mmynk/mealplanner/internal/models"
)

// MaxMealNameLength is the longest accepted meal name, in characters.
const MaxMealNameLength = 200

// Error describes the first rule a payload failed.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// finite reports whether v can be stored: NaN and infinities cannot be
// encoded as JSON.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// MealError returns the first failing rule of m, checked in order:
// name presence, name length, numeric fields, ingredient list.
func MealError(m models.Meal) error {
	if blank(m.Name) {
		return fail("name", "Meal name is required")
	}
	if utf8.RuneCountInString(m.Name) > MaxMealNameLength {
		return fail("name", "Meal name must be at most %d characters", MaxMealNameLength)
	}
	if m.Servings <= 0 {
		return fail("servings", "Number of servings must be greater than 0")
	}
	if m.PrepTime != nil && *m.PrepTime < 0 {
		return fail("prepTime", "Prep time cannot be negative")
	}
	if m.CookTime != nil && *m.CookTime < 0 {
		return fail("cookTime", "Cook time cannot be negative")
	}
	if m.Rating != nil && (*m.Rating < 1 || *m.Rating > 5) {
		return fail("rating", "Rating must be between 1 and 5")
	}
	if m.Cost != nil && !finite(*m.Cost) {
		return fail("cost", "Cost must be a number")
	}
	if m.Cost != nil && *m.Cost < 0 {
		return fail("cost", "Cost cannot be negative")
	}
	if m.Category != "" && !m.Category.Valid() {
		return fail("category", "Unknown meal category %q", m.Category)
	}
	if m.TimesCooked < 0 {
		return fail("timesCooked", "Times cooked cannot be negative")
	}
	if err := nutritionError(m.NutritionInfo); err != nil {
		return err
	}
	for i, ing := range m.Ingredients {
		if err := IngredientError(ing); err != nil {
			verr := err.(*Error)
			return fail("ingredients", "Ingredient %d: %s", i+1, verr.Message)
		}
	}
	return nil
}

// ValidateMeal reports whether m passes MealError.
func ValidateMeal(m models.Meal) bool {
	return MealError(m) == nil
}

// IngredientError returns the first failing rule of ing.
func IngredientError(ing models.Ingredient) error {
	if blank(ing.Name) {
		return fail("name", "Ingredient name is required")
	}
	if !finite(ing.Amount) {
		return fail("amount", "Amount must be a number")
	}
	if ing.Amount <= 0 {
		return fail("amount", "Amount must be greater than 0")
	}
	if blank(ing.Unit) {
		return fail("unit", "Unit is required")
	}
	if ing.Supermarket != "" && !ing.Supermarket.Valid() {
		return fail("supermarket", "Unknown supermarket %q", ing.Supermarket)
	}
	return nil
}

// ValidateIngredient reports whether ing passes IngredientError.
func ValidateIngredient(ing models.Ingredient) bool {
	return IngredientError(ing) == nil
}

// ShoppingListItemError returns the first failing rule of item.
func ShoppingListItemError(item models.ShoppingListItem) error {
	if blank(item.Name) {
		return fail("name", "Item name is required")
	}
	if !finite(item.Amount) {
		return fail("amount", "Amount must be a number")
	}
	if item.Amount <= 0 {
		return fail("amount", "Amount must be greater than 0")
	}
	if blank(item.Unit) {
		return fail("unit", "Unit is required")
	}
	if !item.Supermarket.OrDefault().Valid() {
		return fail("supermarket", "Unknown supermarket %q", item.Supermarket)
	}
	return nil
}

// ValidateShoppingListItem reports whether item passes ShoppingListItemError.
func ValidateShoppingListItem(item models.ShoppingListItem) bool {
	return ShoppingListItemError(item) == nil
}

// HelloFreshRecipeError returns the first failing rule of r.
func HelloFreshRecipeError(r models.HelloFreshRecipe) error {
	if blank(r.Name) {
		return fail("name", "Recipe name is required")
	}
	if blank(r.HelloFreshID) {
		return fail("helloFreshId", "HelloFresh ID is required")
	}
	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		return fail("rating", "Rating must be between 1 and 5")
	}
	return nil
}

// FoodPreferenceError returns the first failing rule of f.
func FoodPreferenceError(f models.FoodPreference) error {
	if blank(f.Name) {
		return fail("name", "Food name is required")
	}
	return nil
}

// TriedFoodError returns the first failing rule of f.
func TriedFoodError(f models.TriedFood) error {
	if blank(f.FoodName) {
		return fail("foodName", "Food name is required")
	}
	if !f.Reaction.Valid() {
		return fail("reaction", "Unknown reaction %q", f.Reaction)
	}
	return nil
}

// ProfileError checks the editable fields of a picky eater profile.
func ProfileError(p models.PickyEaterProfile) error {
	if blank(p.ChildName) {
		return fail("childName", "Child name is required")
	}
	if !finite(p.Age) {
		return fail("age", "Age must be a number")
	}
	if p.Age < 0 {
		return fail("age", "Age cannot be negative")
	}
	return nil
}

// WeekPlanError checks that p's week start is a Monday and that every
// day and slot key is known.
func WeekPlanError(p models.WeekPlan) error {
	monday, err := models.NormalizeWeekStart(p.WeekStart)
	if err != nil {
		return fail("weekStart", "Week start must be a date in yyyy-mm-dd format")
	}
	if monday != p.WeekStart {
		return fail("weekStart", "Week start %s is not a Monday", p.WeekStart)
	}
	// Known days in calendar order first, then unknown days sorted by name,
	// so the same plan always reports the same key.
	for _, day := range models.Days {
		var unknown []string
		for slot := range p.Meals[day] {
			if !slot.Valid() {
				unknown = append(unknown, string(slot))
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return fail("meals", "Unknown meal slot %q on %s", unknown[0], day)
		}
	}
	var unknownDays []string
	for day := range p.Meals {
		if !day.Valid() {
			unknownDays = append(unknownDays, string(day))
		}
	}
	if len(unknownDays) > 0 {
		sort.Strings(unknownDays)
		return fail("meals", "Unknown day %q", unknownDays[0])
	}
	return nil
}

// nutritionError checks that every nutrition value present is a
// non-negative number.
func nutritionError(n *models.NutritionInfo) error {
	if n == nil {
		return nil
	}
	values := []struct {
		name  string
		value *float64
	}{
		{"calories", n.Calories},
		{"protein", n.Protein},
		{"carbs", n.Carbs},
		{"fat", n.Fat},
		{"fiber", n.Fiber},
	}
	for _, v := range values {
		if v.value != nil && (!finite(*v.value) || *v.value < 0) {
			return fail("nutritionInfo", "Nutrition value %s must be a non-negative number", v.name)
		}
	}
	return nil
}
