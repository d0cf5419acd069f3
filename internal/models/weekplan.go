package models

import (
	"fmt"
	"time"
)

// WeekStartLayout is the date format of WeekPlan.WeekStart.
const WeekStartLayout = "2006-01-02"

// Day is a weekday key of a WeekPlan.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Days lists the day keys in calendar order, starting on Monday.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether d is one of the seven day keys.
func (d Day) Valid() bool {
	for _, day := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// Slot is a meal slot within a day.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
)

// Slots lists the slots in serving order.
var Slots = []Slot{SlotBreakfast, SlotLunch, SlotDinner}

// Valid reports whether s is one of the three slots.
func (s Slot) Valid() bool {
	return s == SlotBreakfast || s == SlotLunch || s == SlotDinner
}

// DayMeals maps a slot to the planned meal ID. Absent slots are unplanned.
type DayMeals map[Slot]string

// WeekPlan assigns meals to day/slot pairs for one calendar week.
type WeekPlan struct {
	// ID is the mutation target; callers look plans up by WeekStart.
	ID string `json:"id"`

	// WeekStart is the Monday of the week, formatted as WeekStartLayout.
	WeekStart string `json:"weekStart"`

	// Meals holds at most one meal ID per (day, slot).
	Meals map[Day]DayMeals `json:"meals"`

	Notes string `json:"notes,omitempty"`
}

// MealAt returns the meal planned for day and slot, if any.
func (p WeekPlan) MealAt(day Day, slot Slot) (string, bool) {
	id, ok := p.Meals[day][slot]
	return id, ok && id != ""
}

// MealRefs returns every planned meal ID in calendar then slot order.
// A meal planned twice appears twice.
func (p WeekPlan) MealRefs() []string {
	var refs []string
	for _, day := range Days {
		for _, slot := range Slots {
			if id, ok := p.MealAt(day, slot); ok {
				refs = append(refs, id)
			}
		}
	}
	return refs
}

// Clone returns a deep copy of p.
func (p WeekPlan) Clone() WeekPlan {
	out := p
	out.Meals = make(map[Day]DayMeals, len(p.Meals))
	for day, slots := range p.Meals {
		cp := make(DayMeals, len(slots))
		for slot, id := range slots {
			cp[slot] = id
		}
		out.Meals[day] = cp
	}
	return out
}

// WeekStartOf returns the Monday of t's week as a WeekStart string.
func WeekStartOf(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7 // days since Monday
	y, m, d := t.Date()
	monday := time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
	return monday.Format(WeekStartLayout)
}

// NormalizeWeekStart parses a yyyy-mm-dd date and moves it back to its Monday.
func NormalizeWeekStart(date string) (string, error) {
	t, err := time.Parse(WeekStartLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid week start %q: %w", date, err)
	}
	return WeekStartOf(t), nil
}
