package mutation

import (
	"fmt"
	"slices"

	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/validation"
)

// PlanContent is the editable part of a week plan.
type PlanContent struct {
	Meals map[models.Day]models.DayMeals
	Notes string
}

// GetOrCreateWeekPlan returns the plan for the week containing date. When
// none exists it returns an unsaved empty plan with a fresh ID and false.
// The document is never changed.
func (m *Mutator) GetOrCreateWeekPlan(doc models.Document, date string) (models.WeekPlan, bool, error) {
	weekStart, err := models.NormalizeWeekStart(date)
	if err != nil {
		return models.WeekPlan{}, false, &validation.Error{Field: "weekStart", Message: err.Error()}
	}
	if p, ok := doc.FindWeekPlan(weekStart); ok {
		return p.Clone(), true, nil
	}
	return models.WeekPlan{
		ID:        m.newID(),
		WeekStart: weekStart,
		Meals:     map[models.Day]models.DayMeals{},
	}, false, nil
}

// AddWeekPlan stores a new plan for the week containing date.
func (m *Mutator) AddWeekPlan(doc models.Document, date string, content PlanContent) (models.Document, string, error) {
	weekStart, err := models.NormalizeWeekStart(date)
	if err != nil {
		return doc, "", &validation.Error{Field: "weekStart", Message: err.Error()}
	}
	if _, ok := doc.FindWeekPlan(weekStart); ok {
		return doc, "", fmt.Errorf("week %s: %w", weekStart, ErrDuplicateWeek)
	}

	plan := content.toPlan(weekStart)
	if err := checkPlan(doc, plan); err != nil {
		return doc, "", err
	}
	plan.ID = m.newID()

	doc.WeekPlans = appended(doc.WeekPlans, plan)
	return doc, plan.ID, nil
}

// UpdateWeekPlan replaces the slots and notes of plan id. Its week is fixed.
func (m *Mutator) UpdateWeekPlan(doc models.Document, id string, content PlanContent) (models.Document, error) {
	i := slices.IndexFunc(doc.WeekPlans, func(p models.WeekPlan) bool { return p.ID == id })
	if i < 0 {
		return doc, fmt.Errorf("week plan %s: %w", id, ErrNotFound)
	}

	plan := content.toPlan(doc.WeekPlans[i].WeekStart)
	plan.ID = id
	if err := checkPlan(doc, plan); err != nil {
		return doc, err
	}

	doc.WeekPlans = replaced(doc.WeekPlans, i, plan)
	return doc, nil
}

// AssignSlot plans mealID for day and slot of the week containing date,
// replacing any earlier assignment. The plan is created on first use.
// It returns the plan's ID.
func (m *Mutator) AssignSlot(doc models.Document, date string, day models.Day, slot models.Slot, mealID string) (models.Document, string, error) {
	if !day.Valid() {
		return doc, "", &validation.Error{Field: "day", Message: fmt.Sprintf("Unknown day %q", day)}
	}
	if !slot.Valid() {
		return doc, "", &validation.Error{Field: "slot", Message: fmt.Sprintf("Unknown meal slot %q", slot)}
	}
	if _, ok := doc.FindMeal(mealID); !ok {
		return doc, "", fmt.Errorf("meal %s: %w", mealID, ErrNotFound)
	}

	plan, existed, err := m.GetOrCreateWeekPlan(doc, date)
	if err != nil {
		return doc, "", err
	}
	if plan.Meals[day] == nil {
		plan.Meals[day] = models.DayMeals{}
	}
	plan.Meals[day][slot] = mealID

	if existed {
		i := slices.IndexFunc(doc.WeekPlans, func(p models.WeekPlan) bool { return p.ID == plan.ID })
		doc.WeekPlans = replaced(doc.WeekPlans, i, plan)
	} else {
		doc.WeekPlans = appended(doc.WeekPlans, plan)
	}
	return doc, plan.ID, nil
}

// ClearSlot unplans day and slot of the week containing date.
// Clearing a slot that holds nothing returns doc unchanged.
func (m *Mutator) ClearSlot(doc models.Document, date string, day models.Day, slot models.Slot) (models.Document, error) {
	weekStart, err := models.NormalizeWeekStart(date)
	if err != nil {
		return doc, &validation.Error{Field: "weekStart", Message: err.Error()}
	}
	i := slices.IndexFunc(doc.WeekPlans, func(p models.WeekPlan) bool { return p.WeekStart == weekStart })
	if i < 0 {
		return doc, nil
	}
	if _, ok := doc.WeekPlans[i].Meals[day][slot]; !ok {
		return doc, nil
	}

	plan := doc.WeekPlans[i].Clone()
	delete(plan.Meals[day], slot)
	if len(plan.Meals[day]) == 0 {
		delete(plan.Meals, day)
	}

	doc.WeekPlans = replaced(doc.WeekPlans, i, plan)
	return doc, nil
}

func (c PlanContent) toPlan(weekStart string) models.WeekPlan {
	p := models.WeekPlan{WeekStart: weekStart, Meals: c.Meals, Notes: c.Notes}
	p = p.Clone()
	for day, slots := range p.Meals {
		for slot, id := range slots {
			if id == "" {
				delete(slots, slot)
			}
		}
		if len(slots) == 0 {
			delete(p.Meals, day)
		}
	}
	return p
}

// checkPlan validates plan and requires every slot to reference a known meal.
func checkPlan(doc models.Document, plan models.WeekPlan) error {
	if err := validation.WeekPlanError(plan); err != nil {
		return err
	}
	for _, id := range plan.MealRefs() {
		if _, ok := doc.FindMeal(id); !ok {
			return fmt.Errorf("meal %s: %w", id, ErrNotFound)
		}
	}
	return nil
}
