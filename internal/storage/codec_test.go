package storage

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/mealplanner/internal/models"
)

func sampleDocument() models.Document {
	rating := 4
	cooked := time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC)
	doc := models.NewDocument()
	doc.Meals = []models.Meal{{
		ID:          "m1",
		Name:        "Käsespätzle",
		Servings:    4,
		Category:    models.CategoryDinner,
		Rating:      &rating,
		TimesCooked: 2,
		LastCooked:  &cooked,
		Ingredients: []models.Ingredient{{ID: "i1", Name: "Spätzle", Amount: 500, Unit: "g", Supermarket: models.SupermarketEdeka}},
	}}
	doc.WeekPlans = []models.WeekPlan{{
		ID:        "p1",
		WeekStart: "2024-03-04",
		Meals:     map[models.Day]models.DayMeals{models.Monday: {models.SlotDinner: "m1"}},
	}}
	doc.PickyEater.Allergies = []string{"Nüsse"}
	doc.ShoppingListItems = []models.ShoppingListItem{{
		ID: "s1", IngredientID: "i1", Name: "Spätzle", Amount: 500, Unit: "g",
		Supermarket: models.SupermarketEdeka, MealIDs: []string{"m1"},
	}}
	return doc
}

func TestExportImportRoundTrip(t *testing.T) {
	doc := sampleDocument()

	text, err := ExportText(doc)
	if err != nil {
		t.Fatalf("ExportText() error = %v", err)
	}
	if !strings.Contains(text, "\n  \"meals\": [") {
		t.Errorf("export is not two-space indented:\n%s", text)
	}
	for _, key := range []string{`"pickyEater"`, `"shoppingLists"`, `"helloFreshRecipes"`, `"weekPlans"`} {
		if !strings.Contains(text, key) {
			t.Errorf("export is missing key %s", key)
		}
	}

	got, err := ImportText(text)
	if err != nil {
		t.Fatalf("ImportText() error = %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("round trip mismatch\n got: %+v\nwant: %+v", got, doc)
	}
}

func TestImportTextRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "not json", text: "meals"},
		{name: "missing field", text: `{"meals":[],"weekPlans":[],"helloFreshRecipes":[],"shoppingLists":[]}`},
		{name: "meals not a list", text: `{"meals":{},"weekPlans":[],"pickyEater":{},"helloFreshRecipes":[],"shoppingLists":[]}`},
		{
			name: "profile list wrong kind",
			text: `{"meals":[],"weekPlans":[],"helloFreshRecipes":[],"shoppingLists":[],
				"pickyEater":{"childName":"Lea","age":3,"likes":"none","dislikes":[],"allergies":[],"triedFoods":[]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportText(tt.text)
			if !errors.Is(err, ErrMalformedDocument) {
				t.Errorf("ImportText() error = %v, want ErrMalformedDocument", err)
			}
		})
	}
}

func TestEncodeZeroDocumentNormalizes(t *testing.T) {
	data, err := Encode(models.Document{})
	if err != nil {
		t.Fatal(err)
	}
	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode(%s) error = %v", data, err)
	}
	if doc.Meals == nil || doc.WeekPlans == nil || doc.PickyEater.Likes == nil || doc.ShoppingListItems == nil {
		t.Errorf("decoded document has nil collections: %+v", doc)
	}
}
