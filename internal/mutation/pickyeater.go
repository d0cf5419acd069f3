package mutation

import (
	"fmt"
	"slices"

	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/validation"
)

// FoodInput describes a food added to the likes or dislikes list.
type FoodInput struct {
	Name     string
	Category string
	Notes    string
}

// TastingInput describes one tasting event.
type TastingInput struct {
	FoodName     string
	Reaction     models.Reaction
	Notes        string
	WillTryAgain bool
}

// ProfileInput holds the profile fields that are edited directly.
type ProfileInput struct {
	ChildName string
	Age       float64
	Allergies []string
}

// AddPickyEaterFood appends a food to the selected list. A name already on
// the other list is accepted.
func (m *Mutator) AddPickyEaterFood(doc models.Document, list models.PreferenceList, in FoodInput) (models.Document, string, error) {
	if !list.Valid() {
		return doc, "", &validation.Error{Field: "list", Message: fmt.Sprintf("Unknown preference list %q", list)}
	}
	food := models.FoodPreference{
		Name:     in.Name,
		Category: in.Category,
		Notes:    in.Notes,
	}
	if err := validation.FoodPreferenceError(food); err != nil {
		return doc, "", err
	}
	food.ID = m.newID()
	food.AddedDate = m.timestamp()

	doc.PickyEater = withList(doc.PickyEater, list, appended(doc.PickyEater.List(list), food))
	return doc, food.ID, nil
}

// RemovePickyEaterFood deletes food id from the selected list.
func (m *Mutator) RemovePickyEaterFood(doc models.Document, list models.PreferenceList, id string) (models.Document, error) {
	if !list.Valid() {
		return doc, &validation.Error{Field: "list", Message: fmt.Sprintf("Unknown preference list %q", list)}
	}
	foods := doc.PickyEater.List(list)
	i := slices.IndexFunc(foods, func(f models.FoodPreference) bool { return f.ID == id })
	if i < 0 {
		return doc, fmt.Errorf("%s entry %s: %w", list, id, ErrNotFound)
	}

	doc.PickyEater = withList(doc.PickyEater, list, removed(foods, i))
	return doc, nil
}

// RecordTriedFood logs a tasting event dated now.
func (m *Mutator) RecordTriedFood(doc models.Document, in TastingInput) (models.Document, string, error) {
	tried := models.TriedFood{
		FoodName:     in.FoodName,
		Reaction:     in.Reaction,
		Notes:        in.Notes,
		WillTryAgain: in.WillTryAgain,
	}
	if err := validation.TriedFoodError(tried); err != nil {
		return doc, "", err
	}
	tried.ID = m.newID()
	tried.DateTried = m.timestamp()

	doc.PickyEater.TriedFoods = appended(doc.PickyEater.TriedFoods, tried)
	return doc, tried.ID, nil
}

// UpdatePickyEaterProfile sets name, age and allergies. The preference
// lists and tasting history are kept.
func (m *Mutator) UpdatePickyEaterProfile(doc models.Document, in ProfileInput) (models.Document, error) {
	profile := doc.PickyEater
	profile.ChildName = in.ChildName
	profile.Age = in.Age
	profile.Allergies = slices.Clone(in.Allergies)
	if profile.Allergies == nil {
		profile.Allergies = []string{}
	}
	if err := validation.ProfileError(profile); err != nil {
		return doc, err
	}

	doc.PickyEater = profile
	return doc, nil
}

func withList(p models.PickyEaterProfile, list models.PreferenceList, foods []models.FoodPreference) models.PickyEaterProfile {
	if list == models.Dislikes {
		p.Dislikes = foods
	} else {
		p.Likes = foods
	}
	return p
}
