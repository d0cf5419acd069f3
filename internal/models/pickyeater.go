package models

import "time"

// Reaction is a child's response to tasting a food,
// ordered from most to least positive.
type Reaction string

const (
	ReactionLoved    Reaction = "loved"
	ReactionLiked    Reaction = "liked"
	ReactionNeutral  Reaction = "neutral"
	ReactionDisliked Reaction = "disliked"
	ReactionRefused  Reaction = "refused"
)

// Valid reports whether r is a known reaction.
func (r Reaction) Valid() bool {
	switch r {
	case ReactionLoved, ReactionLiked, ReactionNeutral, ReactionDisliked, ReactionRefused:
		return true
	}
	return false
}

// Positive reports whether r counts as a success.
func (r Reaction) Positive() bool {
	return r == ReactionLoved || r == ReactionLiked
}

// Negative reports whether r counts as a rejection.
func (r Reaction) Negative() bool {
	return r == ReactionDisliked || r == ReactionRefused
}

// PreferenceList selects the likes or dislikes list of a profile.
type PreferenceList string

const (
	Likes    PreferenceList = "likes"
	Dislikes PreferenceList = "dislikes"
)

// Valid reports whether l names one of the two lists.
func (l PreferenceList) Valid() bool {
	return l == Likes || l == Dislikes
}

// PickyEaterProfile tracks one child's food preferences and tasting history.
type PickyEaterProfile struct {
	ChildName  string           `json:"childName"`
	Age        float64          `json:"age"`
	Likes      []FoodPreference `json:"likes"`
	Dislikes   []FoodPreference `json:"dislikes"`
	Allergies  []string         `json:"allergies"`
	TriedFoods []TriedFood      `json:"triedFoods"`
}

// List returns the preference list selected by l.
func (p PickyEaterProfile) List(l PreferenceList) []FoodPreference {
	if l == Dislikes {
		return p.Dislikes
	}
	return p.Likes
}

// Clone returns a deep copy of p.
func (p PickyEaterProfile) Clone() PickyEaterProfile {
	out := p
	out.Likes = append([]FoodPreference{}, p.Likes...)
	out.Dislikes = append([]FoodPreference{}, p.Dislikes...)
	out.Allergies = append([]string{}, p.Allergies...)
	out.TriedFoods = append([]TriedFood{}, p.TriedFoods...)
	return out
}

// FoodPreference is an entry of the likes or dislikes list.
// The same name may appear in both lists.
type FoodPreference struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	AddedDate time.Time `json:"addedDate"`
	Notes     string    `json:"notes,omitempty"`
}

// TriedFood is one logged tasting event.
type TriedFood struct {
	ID           string    `json:"id"`
	FoodName     string    `json:"foodName"`
	DateTried    time.Time `json:"dateTried"`
	Reaction     Reaction  `json:"reaction"`
	Notes        string    `json:"notes,omitempty"`
	WillTryAgain bool      `json:"willTryAgain"`
}
