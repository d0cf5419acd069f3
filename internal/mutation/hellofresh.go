package mutation

import (
	"fmt"
	"slices"

	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/validation"
)

// ConvertedServings is the serving count given to meals converted from
// HelloFresh recipes.
const ConvertedServings = 4

// RecipeInput holds the editable fields of an imported recipe.
type RecipeInput struct {
	HelloFreshID string
	Name         string
	Rating       *int
	Notes        string
}

// AddHelloFreshRecipe stores a new, unconverted recipe stamped with the
// import time.
func (m *Mutator) AddHelloFreshRecipe(doc models.Document, in RecipeInput) (models.Document, string, error) {
	recipe := models.HelloFreshRecipe{}
	in.applyTo(&recipe)
	if err := validation.HelloFreshRecipeError(recipe); err != nil {
		return doc, "", err
	}
	recipe.ID = m.newID()
	recipe.Imported = m.timestamp()

	doc.HelloFreshRecipes = appended(doc.HelloFreshRecipes, recipe)
	return doc, recipe.ID, nil
}

// UpdateHelloFreshRecipe edits recipe id. Import time and conversion state are kept.
func (m *Mutator) UpdateHelloFreshRecipe(doc models.Document, id string, in RecipeInput) (models.Document, error) {
	i := m.recipeIndex(doc, id)
	if i < 0 {
		return doc, fmt.Errorf("recipe %s: %w", id, ErrNotFound)
	}

	recipe := doc.HelloFreshRecipes[i].Clone()
	in.applyTo(&recipe)
	if err := validation.HelloFreshRecipeError(recipe); err != nil {
		return doc, err
	}

	doc.HelloFreshRecipes = replaced(doc.HelloFreshRecipes, i, recipe)
	return doc, nil
}

// DeleteHelloFreshRecipe removes recipe id. A meal created from it stays.
func (m *Mutator) DeleteHelloFreshRecipe(doc models.Document, id string) (models.Document, error) {
	i := m.recipeIndex(doc, id)
	if i < 0 {
		return doc, fmt.Errorf("recipe %s: %w", id, ErrNotFound)
	}
	doc.HelloFreshRecipes = removed(doc.HelloFreshRecipes, i)
	return doc, nil
}

// ConvertHelloFreshRecipe creates a dinner meal from recipe id and links
// the two. ingredients may be empty. Converting twice creates a second meal
// and relinks the recipe to it. It returns the new meal's ID.
func (m *Mutator) ConvertHelloFreshRecipe(doc models.Document, id string, ingredients []models.Ingredient) (models.Document, string, error) {
	i := m.recipeIndex(doc, id)
	if i < 0 {
		return doc, "", fmt.Errorf("recipe %s: %w", id, ErrNotFound)
	}
	recipe := doc.HelloFreshRecipes[i].Clone()

	doc, mealID, err := m.AddMeal(doc, MealInput{
		Name:         recipe.Name,
		Description:  recipe.Notes,
		Ingredients:  ingredients,
		Servings:     ConvertedServings,
		Category:     models.CategoryDinner,
		Rating:       recipe.Rating,
		IsHelloFresh: true,
		HelloFreshID: recipe.HelloFreshID,
	})
	if err != nil {
		return doc, "", err
	}

	recipe.Converted = true
	recipe.MealID = mealID
	doc.HelloFreshRecipes = replaced(doc.HelloFreshRecipes, i, recipe)
	return doc, mealID, nil
}

func (m *Mutator) recipeIndex(doc models.Document, id string) int {
	return slices.IndexFunc(doc.HelloFreshRecipes, func(r models.HelloFreshRecipe) bool { return r.ID == id })
}

// applyTo copies in onto r. r never shares the caller's Rating pointer.
func (in RecipeInput) applyTo(r *models.HelloFreshRecipe) {
	r.HelloFreshID = in.HelloFreshID
	r.Name = in.Name
	r.Rating = nil
	if in.Rating != nil {
		rating := *in.Rating
		r.Rating = &rating
	}
	r.Notes = in.Notes
}
