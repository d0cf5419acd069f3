package models

import "time"

// HelloFreshRecipe is an imported recipe record.
// Converting it creates a Meal and sets Converted and MealID.
type HelloFreshRecipe struct {
	ID string `json:"id"`

	// HelloFreshID is the external reference, never empty.
	HelloFreshID string `json:"helloFreshId"`

	Name string `json:"name"`

	// Imported is when the record was created.
	Imported time.Time `json:"imported"`

	// Rating is 1-5 stars, nil when unrated.
	Rating *int   `json:"rating,omitempty"`
	Notes  string `json:"notes,omitempty"`

	Converted bool `json:"converted"`

	// MealID is set only once Converted is true.
	MealID string `json:"mealId,omitempty"`
}

// Clone returns a deep copy of r.
func (r HelloFreshRecipe) Clone() HelloFreshRecipe {
	out := r
	out.Rating = cloneInt(r.Rating)
	return out
}
