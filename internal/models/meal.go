package models

import "time"

// Category classifies a meal by the time of day it is served.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategorySnack     Category = "snack"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack:
		return true
	}
	return false
}

// OrDefault returns c, or CategoryDinner when c is empty.
func (c Category) OrDefault() Category {
	if c == "" {
		return CategoryDinner
	}
	return c
}

// Supermarket tags where an ingredient is usually bought.
type Supermarket string

const (
	SupermarketEdeka Supermarket = "edeka"
	SupermarketRewe  Supermarket = "rewe"
	SupermarketAldi  Supermarket = "aldi"
	SupermarketLidl  Supermarket = "lidl"
	SupermarketOther Supermarket = "other"
)

// Valid reports whether s is one of the known supermarkets.
func (s Supermarket) Valid() bool {
	switch s {
	case SupermarketEdeka, SupermarketRewe, SupermarketAldi, SupermarketLidl, SupermarketOther:
		return true
	}
	return false
}

// OrDefault returns s, or SupermarketOther when s is empty.
func (s Supermarket) OrDefault() Supermarket {
	if s == "" {
		return SupermarketOther
	}
	return s
}

// Meal is a reusable dish template that can be planned many times.
type Meal struct {
	// ID is the unique identifier for the meal (UUID format).
	// It never changes across updates.
	ID string `json:"id"`

	// Name is the display name, 1 to 200 characters.
	Name string `json:"name"`

	Description string `json:"description,omitempty"`

	// Ingredients are ordered as entered by the user.
	Ingredients []Ingredient `json:"ingredients"`

	// Servings is the number of portions the ingredient amounts produce.
	Servings int `json:"servings"`

	// PrepTime and CookTime are in minutes.
	PrepTime *int `json:"prepTime,omitempty"`
	CookTime *int `json:"cookTime,omitempty"`

	// Category defaults to dinner when empty.
	Category Category `json:"category,omitempty"`

	// Rating is 1-5 stars, nil when unrated.
	Rating *int `json:"rating,omitempty"`

	// IsHelloFresh and HelloFreshID link a meal converted from a HelloFreshRecipe.
	IsHelloFresh bool   `json:"isHelloFresh,omitempty"`
	HelloFreshID string `json:"helloFreshId,omitempty"`

	// LastCooked is set by the "cooked" action.
	LastCooked *time.Time `json:"lastCooked,omitempty"`

	// TimesCooked starts at 0 and only grows through the "cooked" action.
	TimesCooked int `json:"timesCooked"`

	Notes         string         `json:"notes,omitempty"`
	NutritionInfo *NutritionInfo `json:"nutritionInfo,omitempty"`

	// Cost is the estimated price in EUR.
	Cost *float64 `json:"cost,omitempty"`
}

// Clone returns a deep copy of m.
func (m Meal) Clone() Meal {
	out := m
	out.Ingredients = make([]Ingredient, len(m.Ingredients))
	copy(out.Ingredients, m.Ingredients)
	out.PrepTime = cloneInt(m.PrepTime)
	out.CookTime = cloneInt(m.CookTime)
	out.Rating = cloneInt(m.Rating)
	out.Cost = cloneFloat(m.Cost)
	if m.LastCooked != nil {
		t := *m.LastCooked
		out.LastCooked = &t
	}
	if m.NutritionInfo != nil {
		n := m.NutritionInfo.Clone()
		out.NutritionInfo = &n
	}
	return out
}

// Ingredient is a line of a meal's ingredient list.
// Two ingredients are the same shopping-list line iff Name and Unit match exactly.
type Ingredient struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Amount      float64     `json:"amount"`
	Unit        string      `json:"unit"`
	Category    string      `json:"category,omitempty"`
	Supermarket Supermarket `json:"supermarket,omitempty"`
}

// NutritionInfo holds optional per-serving nutrition values.
type NutritionInfo struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
}

// Clone returns a deep copy of n.
func (n NutritionInfo) Clone() NutritionInfo {
	return NutritionInfo{
		Calories: cloneFloat(n.Calories),
		Protein:  cloneFloat(n.Protein),
		Carbs:    cloneFloat(n.Carbs),
		Fat:      cloneFloat(n.Fat),
		Fiber:    cloneFloat(n.Fiber),
	}
}
