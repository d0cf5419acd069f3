package calculator

import (
	"math"
	"sort"

	"github.com/mmynk/mealplanner/internal/models"
)

// DefaultIngredientLimit is the number of ingredients MostUsedIngredients returns by default.
const DefaultIngredientLimit = 10

// MealStats summarizes the meal library.
type MealStats struct {
	TotalMeals    int
	AverageRating float64 // Mean over rated meals, 0 when none are rated
	MostCooked    *models.Meal
	ByCategory    map[models.Category]int // Only categories with at least one meal
	TotalCost     float64
	AverageCost   float64 // TotalCost / TotalMeals
}

// PickyEaterStats summarizes the tasting log and preference lists.
type PickyEaterStats struct {
	TotalTried   int
	Liked        int // loved + liked
	Disliked     int // disliked + refused
	Neutral      int
	SuccessRate  int // Percentage of tastings that were liked, rounded
	LikeCount    int
	DislikeCount int
}

// HelloFreshStats summarizes imported recipes.
type HelloFreshStats struct {
	TotalRecipes     int
	ConvertedToMeals int
	RatedRecipes     int
	AverageRating    float64
}

// IngredientCount is an ingredient name and how many ingredient lists use it.
type IngredientCount struct {
	Name  string
	Count int
}

// ComputeMealStats aggregates the meal library. Rating and money values are
// rounded to 2 decimals; an empty library yields zeros and a nil MostCooked.
func ComputeMealStats(doc models.Document) MealStats {
	stats := MealStats{
		TotalMeals: len(doc.Meals),
		ByCategory: make(map[models.Category]int),
	}
	if len(doc.Meals) == 0 {
		return stats
	}

	var ratingSum float64
	var rated int
	var totalCost float64
	mostCooked := 0

	for i, m := range doc.Meals {
		if m.Rating != nil {
			ratingSum += float64(*m.Rating)
			rated++
		}
		if m.Cost != nil {
			totalCost += *m.Cost
		}
		stats.ByCategory[m.Category.OrDefault()]++

		// Strictly greater keeps the first meal on ties
		if m.TimesCooked > doc.Meals[mostCooked].TimesCooked {
			mostCooked = i
		}
	}

	if rated > 0 {
		stats.AverageRating = round2(ratingSum / float64(rated))
	}
	best := doc.Meals[mostCooked].Clone()
	stats.MostCooked = &best
	stats.TotalCost = round2(totalCost)
	stats.AverageCost = round2(totalCost / float64(len(doc.Meals)))

	return stats
}

// ComputePickyEaterStats aggregates the child's tasting log.
// SuccessRate is 0 when nothing has been tried.
func ComputePickyEaterStats(doc models.Document) PickyEaterStats {
	pe := doc.PickyEater
	stats := PickyEaterStats{
		TotalTried:   len(pe.TriedFoods),
		LikeCount:    len(pe.Likes),
		DislikeCount: len(pe.Dislikes),
	}

	for _, f := range pe.TriedFoods {
		switch {
		case f.Reaction.Positive():
			stats.Liked++
		case f.Reaction.Negative():
			stats.Disliked++
		case f.Reaction == models.ReactionNeutral:
			stats.Neutral++
		}
	}

	if stats.TotalTried > 0 {
		stats.SuccessRate = int(math.Round(float64(stats.Liked) / float64(stats.TotalTried) * 100))
	}
	return stats
}

// ComputeHelloFreshStats aggregates imported recipes.
func ComputeHelloFreshStats(doc models.Document) HelloFreshStats {
	stats := HelloFreshStats{TotalRecipes: len(doc.HelloFreshRecipes)}

	var ratingSum float64
	for _, r := range doc.HelloFreshRecipes {
		if r.Converted {
			stats.ConvertedToMeals++
		}
		if r.Rating != nil {
			stats.RatedRecipes++
			ratingSum += float64(*r.Rating)
		}
	}

	if stats.RatedRecipes > 0 {
		stats.AverageRating = round2(ratingSum / float64(stats.RatedRecipes))
	}
	return stats
}

// MostUsedIngredients counts ingredient occurrences by name across all meals,
// ignoring units, and returns the top limit entries by descending count.
// Ties keep the order in which names were first seen. limit <= 0 means
// DefaultIngredientLimit.
func MostUsedIngredients(doc models.Document, limit int) []IngredientCount {
	if limit <= 0 {
		limit = DefaultIngredientLimit
	}

	index := make(map[string]int)
	counts := []IngredientCount{}
	for _, m := range doc.Meals {
		for _, ing := range m.Ingredients {
			if i, exists := index[ing.Name]; exists {
				counts[i].Count++
				continue
			}
			index[ing.Name] = len(counts)
			counts = append(counts, IngredientCount{Name: ing.Name, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
