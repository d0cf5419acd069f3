package service

import (
	"context"

	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/mutation"
	"github.com/mmynk/mealplanner/internal/storage"
)

// AddMeal adds a meal and returns its ID.
func (p *Planner) AddMeal(ctx context.Context, in mutation.MealInput) (string, error) {
	var id string
	err := p.apply(ctx, "add_meal", func(doc models.Document) (models.Document, error) {
		var err error
		doc, id, err = p.mutator.AddMeal(doc, in)
		return doc, err
	}, "name", in.Name)
	return id, err
}

// UpdateMeal edits meal id.
func (p *Planner) UpdateMeal(ctx context.Context, id string, in mutation.MealInput) error {
	return p.apply(ctx, "update_meal", func(doc models.Document) (models.Document, error) {
		return p.mutator.UpdateMeal(doc, id, in)
	}, "meal_id", id)
}

// DeleteMeal removes meal id and its week plan slots.
func (p *Planner) DeleteMeal(ctx context.Context, id string) error {
	return p.apply(ctx, "delete_meal", func(doc models.Document) (models.Document, error) {
		return p.mutator.DeleteMeal(doc, id)
	}, "meal_id", id)
}

// MarkMealCooked records that meal id was cooked now.
func (p *Planner) MarkMealCooked(ctx context.Context, id string) error {
	return p.apply(ctx, "mark_meal_cooked", func(doc models.Document) (models.Document, error) {
		return p.mutator.MarkMealCooked(doc, id)
	}, "meal_id", id)
}

// AddWeekPlan creates the plan for the week containing date.
func (p *Planner) AddWeekPlan(ctx context.Context, date string, content mutation.PlanContent) (string, error) {
	var id string
	err := p.apply(ctx, "add_week_plan", func(doc models.Document) (models.Document, error) {
		var err error
		doc, id, err = p.mutator.AddWeekPlan(doc, date, content)
		return doc, err
	}, "date", date)
	return id, err
}

// UpdateWeekPlan replaces the slots and notes of plan id.
func (p *Planner) UpdateWeekPlan(ctx context.Context, id string, content mutation.PlanContent) error {
	return p.apply(ctx, "update_week_plan", func(doc models.Document) (models.Document, error) {
		return p.mutator.UpdateWeekPlan(doc, id, content)
	}, "plan_id", id)
}

// AssignSlot plans mealID for a day and slot, creating the week's plan if needed.
func (p *Planner) AssignSlot(ctx context.Context, date string, day models.Day, slot models.Slot, mealID string) (string, error) {
	var planID string
	err := p.apply(ctx, "assign_slot", func(doc models.Document) (models.Document, error) {
		var err error
		doc, planID, err = p.mutator.AssignSlot(doc, date, day, slot, mealID)
		return doc, err
	}, "date", date, "day", day, "slot", slot, "meal_id", mealID)
	return planID, err
}

// ClearSlot unplans a day and slot.
func (p *Planner) ClearSlot(ctx context.Context, date string, day models.Day, slot models.Slot) error {
	return p.apply(ctx, "clear_slot", func(doc models.Document) (models.Document, error) {
		return p.mutator.ClearSlot(doc, date, day, slot)
	}, "date", date, "day", day, "slot", slot)
}

// RegenerateShoppingList replaces the stored shopping list with the one
// derived from the week containing date, and returns it.
func (p *Planner) RegenerateShoppingList(ctx context.Context, date string) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := p.apply(ctx, "regenerate_shopping_list", func(doc models.Document) (models.Document, error) {
		next, err := p.mutator.RegenerateShoppingList(doc, date)
		if err != nil {
			return doc, err
		}
		items = cloneItems(next.ShoppingListItems)
		return next, nil
	}, "date", date)
	return items, err
}

// AddShoppingItem adds a manual shopping list line.
func (p *Planner) AddShoppingItem(ctx context.Context, in mutation.ShoppingItemInput) (string, error) {
	var id string
	err := p.apply(ctx, "add_shopping_item", func(doc models.Document) (models.Document, error) {
		var err error
		doc, id, err = p.mutator.AddShoppingItem(doc, in)
		return doc, err
	}, "name", in.Name)
	return id, err
}

// UpdateShoppingItem edits shopping list line id.
func (p *Planner) UpdateShoppingItem(ctx context.Context, id string, in mutation.ShoppingItemInput) error {
	return p.apply(ctx, "update_shopping_item", func(doc models.Document) (models.Document, error) {
		return p.mutator.UpdateShoppingItem(doc, id, in)
	}, "item_id", id)
}

// ToggleShoppingItem flips the checked flag of line id.
func (p *Planner) ToggleShoppingItem(ctx context.Context, id string) error {
	return p.apply(ctx, "toggle_shopping_item", func(doc models.Document) (models.Document, error) {
		return p.mutator.ToggleShoppingItem(doc, id)
	}, "item_id", id)
}

// DeleteShoppingItem removes line id.
func (p *Planner) DeleteShoppingItem(ctx context.Context, id string) error {
	return p.apply(ctx, "delete_shopping_item", func(doc models.Document) (models.Document, error) {
		return p.mutator.DeleteShoppingItem(doc, id)
	}, "item_id", id)
}

// ClearShoppingList empties the shopping list.
func (p *Planner) ClearShoppingList(ctx context.Context) error {
	return p.apply(ctx, "clear_shopping_list", func(doc models.Document) (models.Document, error) {
		return p.mutator.ClearShoppingList(doc), nil
	})
}

// ClearCheckedItems drops checked lines from the shopping list.
func (p *Planner) ClearCheckedItems(ctx context.Context) error {
	return p.apply(ctx, "clear_checked_items", func(doc models.Document) (models.Document, error) {
		return p.mutator.ClearCheckedItems(doc), nil
	})
}

// AddPickyEaterFood adds a food to the likes or dislikes list.
func (p *Planner) AddPickyEaterFood(ctx context.Context, list models.PreferenceList, in mutation.FoodInput) (string, error) {
	var id string
	err := p.apply(ctx, "add_picky_eater_food", func(doc models.Document) (models.Document, error) {
		var err error
		doc, id, err = p.mutator.AddPickyEaterFood(doc, list, in)
		return doc, err
	}, "list", list, "name", in.Name)
	return id, err
}

// RemovePickyEaterFood removes food id from the given list.
func (p *Planner) RemovePickyEaterFood(ctx context.Context, list models.PreferenceList, id string) error {
	return p.apply(ctx, "remove_picky_eater_food", func(doc models.Document) (models.Document, error) {
		return p.mutator.RemovePickyEaterFood(doc, list, id)
	}, "list", list, "food_id", id)
}

// RecordTriedFood logs a tasting.
func (p *Planner) RecordTriedFood(ctx context.Context, in mutation.TastingInput) (string, error) {
	var id string
	err := p.apply(ctx, "record_tried_food", func(doc models.Document) (models.Document, error) {
		var err error
		doc, id, err = p.mutator.RecordTriedFood(doc, in)
		return doc, err
	}, "food", in.FoodName, "reaction", in.Reaction)
	return id, err
}

// UpdatePickyEaterProfile sets the child's name, age and allergies.
func (p *Planner) UpdatePickyEaterProfile(ctx context.Context, in mutation.ProfileInput) error {
	return p.apply(ctx, "update_picky_eater_profile", func(doc models.Document) (models.Document, error) {
		return p.mutator.UpdatePickyEaterProfile(doc, in)
	})
}

// AddHelloFreshRecipe imports a recipe record.
func (p *Planner) AddHelloFreshRecipe(ctx context.Context, in mutation.RecipeInput) (string, error) {
	var id string
	err := p.apply(ctx, "add_hellofresh_recipe", func(doc models.Document) (models.Document, error) {
		var err error
		doc, id, err = p.mutator.AddHelloFreshRecipe(doc, in)
		return doc, err
	}, "hellofresh_id", in.HelloFreshID)
	return id, err
}

// UpdateHelloFreshRecipe edits recipe id.
func (p *Planner) UpdateHelloFreshRecipe(ctx context.Context, id string, in mutation.RecipeInput) error {
	return p.apply(ctx, "update_hellofresh_recipe", func(doc models.Document) (models.Document, error) {
		return p.mutator.UpdateHelloFreshRecipe(doc, id, in)
	}, "recipe_id", id)
}

// DeleteHelloFreshRecipe removes recipe id.
func (p *Planner) DeleteHelloFreshRecipe(ctx context.Context, id string) error {
	return p.apply(ctx, "delete_hellofresh_recipe", func(doc models.Document) (models.Document, error) {
		return p.mutator.DeleteHelloFreshRecipe(doc, id)
	}, "recipe_id", id)
}

// ConvertHelloFreshRecipe turns recipe id into a meal and returns the meal ID.
func (p *Planner) ConvertHelloFreshRecipe(ctx context.Context, id string, ingredients []models.Ingredient) (string, error) {
	var mealID string
	err := p.apply(ctx, "convert_hellofresh_recipe", func(doc models.Document) (models.Document, error) {
		var err error
		doc, mealID, err = p.mutator.ConvertHelloFreshRecipe(doc, id, ingredients)
		return doc, err
	}, "recipe_id", id)
	return mealID, err
}

// Import replaces the whole document with an exported one.
// A malformed text leaves the current document untouched.
func (p *Planner) Import(ctx context.Context, text string) error {
	return p.apply(ctx, "import", func(doc models.Document) (models.Document, error) {
		imported, err := storage.ImportText(text)
		if err != nil {
			return doc, err
		}
		return imported, nil
	})
}

func cloneItems(items []models.ShoppingListItem) []models.ShoppingListItem {
	out := make([]models.ShoppingListItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
