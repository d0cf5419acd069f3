package models

// ShoppingListItem is one aggregated line of a shopping list.
// It is a snapshot: IngredientID and MealIDs may dangle after meals are deleted.
type ShoppingListItem struct {
	ID string `json:"id"`

	// IngredientID references the ingredient that opened this line.
	IngredientID string `json:"ingredientId"`

	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`

	Category string `json:"category,omitempty"`

	// Supermarket defaults to SupermarketOther.
	Supermarket Supermarket `json:"supermarket"`

	Checked bool `json:"checked"`

	// MealIDs lists each contributing meal once.
	MealIDs []string `json:"mealIds"`
}

// Clone returns a deep copy of item.
func (item ShoppingListItem) Clone() ShoppingListItem {
	out := item
	out.MealIDs = append([]string{}, item.MealIDs...)
	return out
}
