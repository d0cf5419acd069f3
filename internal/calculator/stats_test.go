package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/mealplanner/internal/models"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestComputeMealStats(t *testing.T) {
	tests := []struct {
		name         string
		meals        []models.Meal
		validateFunc func(t *testing.T, s MealStats)
	}{
		{
			name:  "empty library",
			meals: nil,
			validateFunc: func(t *testing.T, s MealStats) {
				if s.TotalMeals != 0 || s.AverageRating != 0 || s.TotalCost != 0 || s.AverageCost != 0 {
					t.Errorf("expected zero stats, got %+v", s)
				}
				if s.MostCooked != nil {
					t.Errorf("MostCooked = %+v, want nil", s.MostCooked)
				}
				if s.ByCategory == nil || len(s.ByCategory) != 0 {
					t.Errorf("ByCategory = %v, want empty map", s.ByCategory)
				}
			},
		},
		{
			name: "ratings, costs and categories",
			meals: []models.Meal{
				{ID: "a", Name: "A", Rating: intPtr(4), Cost: floatPtr(10.25), Category: models.CategoryLunch, TimesCooked: 2},
				{ID: "b", Name: "B", Rating: intPtr(5), TimesCooked: 5},
				{ID: "c", Name: "C", Cost: floatPtr(2.5), Category: models.CategoryDinner, TimesCooked: 5},
			},
			validateFunc: func(t *testing.T, s MealStats) {
				if s.TotalMeals != 3 {
					t.Errorf("TotalMeals = %d, want 3", s.TotalMeals)
				}
				if math.Abs(s.AverageRating-4.5) > 0.001 {
					t.Errorf("AverageRating = %v, want 4.5", s.AverageRating)
				}
				if math.Abs(s.TotalCost-12.75) > 0.001 {
					t.Errorf("TotalCost = %v, want 12.75", s.TotalCost)
				}
				if math.Abs(s.AverageCost-4.25) > 0.001 {
					t.Errorf("AverageCost = %v, want 4.25", s.AverageCost)
				}
				if s.MostCooked == nil || s.MostCooked.ID != "b" {
					t.Errorf("MostCooked = %+v, want b (first of tie)", s.MostCooked)
				}
				if s.ByCategory[models.CategoryDinner] != 2 || s.ByCategory[models.CategoryLunch] != 1 {
					t.Errorf("ByCategory = %v", s.ByCategory)
				}
				if _, ok := s.ByCategory[models.CategorySnack]; ok {
					t.Error("snack present with zero meals")
				}
			},
		},
		{
			name: "repeating rating rounds to two decimals",
			meals: []models.Meal{
				{ID: "a", Rating: intPtr(1)},
				{ID: "b", Rating: intPtr(1)},
				{ID: "c", Rating: intPtr(2)},
			},
			validateFunc: func(t *testing.T, s MealStats) {
				if s.AverageRating != 1.33 {
					t.Errorf("AverageRating = %v, want 1.33", s.AverageRating)
				}
				if s.MostCooked == nil || s.MostCooked.ID != "a" {
					t.Errorf("MostCooked = %+v, want a", s.MostCooked)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := models.NewDocument()
			doc.Meals = tt.meals
			tt.validateFunc(t, ComputeMealStats(doc))
		})
	}
}

func TestComputePickyEaterStats(t *testing.T) {
	t.Run("nothing tried", func(t *testing.T) {
		doc := models.NewDocument()
		doc.PickyEater.Likes = []models.FoodPreference{{ID: "l1", Name: "Pasta"}}
		s := ComputePickyEaterStats(doc)
		if s.TotalTried != 0 || s.SuccessRate != 0 {
			t.Errorf("expected zero tasting stats, got %+v", s)
		}
		if s.LikeCount != 1 || s.DislikeCount != 0 {
			t.Errorf("preference counts = %d/%d, want 1/0", s.LikeCount, s.DislikeCount)
		}
	})

	t.Run("mixed reactions", func(t *testing.T) {
		doc := models.NewDocument()
		for _, r := range []models.Reaction{
			models.ReactionLoved, models.ReactionLiked, models.ReactionNeutral,
			models.ReactionDisliked, models.ReactionRefused, models.ReactionRefused,
		} {
			doc.PickyEater.TriedFoods = append(doc.PickyEater.TriedFoods, models.TriedFood{FoodName: "x", Reaction: r})
		}
		s := ComputePickyEaterStats(doc)
		if s.TotalTried != 6 || s.Liked != 2 || s.Disliked != 3 || s.Neutral != 1 {
			t.Errorf("unexpected counts: %+v", s)
		}
		if s.SuccessRate != 33 {
			t.Errorf("SuccessRate = %d, want 33", s.SuccessRate)
		}
	})

	t.Run("rounds half up", func(t *testing.T) {
		doc := models.NewDocument()
		doc.PickyEater.TriedFoods = []models.TriedFood{
			{Reaction: models.ReactionLiked}, {Reaction: models.ReactionRefused},
			{Reaction: models.ReactionRefused}, {Reaction: models.ReactionRefused},
			{Reaction: models.ReactionRefused}, {Reaction: models.ReactionRefused},
			{Reaction: models.ReactionRefused}, {Reaction: models.ReactionRefused},
		}
		if s := ComputePickyEaterStats(doc); s.SuccessRate != 13 {
			t.Errorf("SuccessRate = %d, want 13 (12.5 rounded)", s.SuccessRate)
		}
	})
}

func TestComputeHelloFreshStats(t *testing.T) {
	doc := models.NewDocument()
	if s := ComputeHelloFreshStats(doc); s != (HelloFreshStats{}) {
		t.Errorf("expected zero stats, got %+v", s)
	}

	doc.HelloFreshRecipes = []models.HelloFreshRecipe{
		{ID: "a", Rating: intPtr(5), Converted: true, MealID: "m1"},
		{ID: "b", Rating: intPtr(4)},
		{ID: "c", Rating: intPtr(4)},
		{ID: "d"},
	}
	s := ComputeHelloFreshStats(doc)
	want := HelloFreshStats{TotalRecipes: 4, ConvertedToMeals: 1, RatedRecipes: 3, AverageRating: 4.33}
	if s != want {
		t.Errorf("ComputeHelloFreshStats() = %+v, want %+v", s, want)
	}
}

func TestMostUsedIngredients(t *testing.T) {
	ing := func(name string) models.Ingredient { return models.Ingredient{Name: name, Amount: 1, Unit: "g"} }

	doc := models.NewDocument()
	for i := 0; i < 5; i++ {
		ingredients := []models.Ingredient{ing("Onion")}
		if i < 3 {
			ingredients = append([]models.Ingredient{ing("Tomato")}, ingredients...)
		}
		doc.Meals = append(doc.Meals, models.Meal{ID: string(rune('a' + i)), Ingredients: ingredients})
	}
	doc.Meals = append(doc.Meals, models.Meal{ID: "z", Ingredients: []models.Ingredient{
		{Name: "Garlic", Amount: 1, Unit: "clove"},
		{Name: "Basil", Amount: 5, Unit: "g"},
		{Name: "Garlic", Amount: 10, Unit: "g"},
	}})

	got := MostUsedIngredients(doc, 10)
	want := []IngredientCount{{"Onion", 5}, {"Tomato", 3}, {"Garlic", 2}, {"Basil", 1}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %v, want %v", i, got[i], want[i])
		}
	}

	if top := MostUsedIngredients(doc, 1); len(top) != 1 || top[0].Name != "Onion" {
		t.Errorf("limit 1 = %v", top)
	}
	if all := MostUsedIngredients(doc, 0); len(all) != 4 {
		t.Errorf("default limit returned %d entries", len(all))
	}
}

func TestMostUsedIngredientsTiesKeepFirstSeen(t *testing.T) {
	doc := models.NewDocument()
	doc.Meals = []models.Meal{
		{ID: "1", Ingredients: []models.Ingredient{{Name: "Zucchini"}, {Name: "Apple"}}},
		{ID: "2", Ingredients: []models.Ingredient{{Name: "Mango"}}},
	}
	got := MostUsedIngredients(doc, 10)
	if got[0].Name != "Zucchini" || got[1].Name != "Apple" || got[2].Name != "Mango" {
		t.Errorf("tie order = %v, want first-seen order", got)
	}
}
