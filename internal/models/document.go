package models

// Default profile values used when no stored document exists.
const (
	DefaultChildName = "Meine Tochter"
	DefaultChildAge  = 3.5
)

// Document is the root aggregate holding all persisted application state.
// Exactly one Document is current at a time; it is replaced, never edited.
type Document struct {
	// Meals is the meal library.
	Meals []Meal `json:"meals"`

	// WeekPlans holds at most one plan per week start.
	WeekPlans []WeekPlan `json:"weekPlans"`

	// PickyEater is the single embedded child profile.
	PickyEater PickyEaterProfile `json:"pickyEater"`

	// HelloFreshRecipes are imported third-party recipe records.
	HelloFreshRecipes []HelloFreshRecipe `json:"helloFreshRecipes"`

	// ShoppingListItems is a cached derivation of one WeekPlan.
	// Only a full regeneration may replace it; see calculator.GenerateShoppingList.
	ShoppingListItems []ShoppingListItem `json:"shoppingLists"`
}

// NewDocument returns an empty document with deterministic profile defaults.
func NewDocument() Document {
	return Document{
		Meals:     []Meal{},
		WeekPlans: []WeekPlan{},
		PickyEater: PickyEaterProfile{
			ChildName:  DefaultChildName,
			Age:        DefaultChildAge,
			Likes:      []FoodPreference{},
			Dislikes:   []FoodPreference{},
			Allergies:  []string{},
			TriedFoods: []TriedFood{},
		},
		HelloFreshRecipes: []HelloFreshRecipe{},
		ShoppingListItems: []ShoppingListItem{},
	}
}

// Normalize replaces nil collections with empty ones so the document
// always serializes every field as an array.
func (d *Document) Normalize() {
	if d.Meals == nil {
		d.Meals = []Meal{}
	}
	for i := range d.Meals {
		if d.Meals[i].Ingredients == nil {
			d.Meals[i].Ingredients = []Ingredient{}
		}
	}
	if d.WeekPlans == nil {
		d.WeekPlans = []WeekPlan{}
	}
	for i := range d.WeekPlans {
		if d.WeekPlans[i].Meals == nil {
			d.WeekPlans[i].Meals = map[Day]DayMeals{}
		}
	}
	if d.HelloFreshRecipes == nil {
		d.HelloFreshRecipes = []HelloFreshRecipe{}
	}
	if d.ShoppingListItems == nil {
		d.ShoppingListItems = []ShoppingListItem{}
	}
	for i := range d.ShoppingListItems {
		if d.ShoppingListItems[i].MealIDs == nil {
			d.ShoppingListItems[i].MealIDs = []string{}
		}
	}
	p := &d.PickyEater
	if p.Likes == nil {
		p.Likes = []FoodPreference{}
	}
	if p.Dislikes == nil {
		p.Dislikes = []FoodPreference{}
	}
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	if p.TriedFoods == nil {
		p.TriedFoods = []TriedFood{}
	}
}

// Clone returns a deep copy that shares no slices, maps or pointers with d.
func (d Document) Clone() Document {
	out := Document{
		Meals:             make([]Meal, len(d.Meals)),
		WeekPlans:         make([]WeekPlan, len(d.WeekPlans)),
		PickyEater:        d.PickyEater.Clone(),
		HelloFreshRecipes: make([]HelloFreshRecipe, len(d.HelloFreshRecipes)),
		ShoppingListItems: make([]ShoppingListItem, len(d.ShoppingListItems)),
	}
	for i, m := range d.Meals {
		out.Meals[i] = m.Clone()
	}
	for i, p := range d.WeekPlans {
		out.WeekPlans[i] = p.Clone()
	}
	for i, r := range d.HelloFreshRecipes {
		out.HelloFreshRecipes[i] = r.Clone()
	}
	for i, item := range d.ShoppingListItems {
		out.ShoppingListItems[i] = item.Clone()
	}
	return out
}

// FindMeal returns the meal with the given ID.
func (d *Document) FindMeal(id string) (Meal, bool) {
	for _, m := range d.Meals {
		if m.ID == id {
			return m, true
		}
	}
	return Meal{}, false
}

// FindWeekPlan returns the plan whose WeekStart equals weekStart.
func (d *Document) FindWeekPlan(weekStart string) (WeekPlan, bool) {
	for _, p := range d.WeekPlans {
		if p.WeekStart == weekStart {
			return p, true
		}
	}
	return WeekPlan{}, false
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
