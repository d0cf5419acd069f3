// Package models defines the core domain models for the meal planner.
//
// # Document
//
// All application state lives in a single Document:
//   - Meal: a reusable dish with its Ingredients
//   - WeekPlan: meals assigned to day/slot pairs for one Monday-start week
//   - PickyEaterProfile: a child's likes, dislikes, allergies and tasting log
//   - HelloFreshRecipe: an imported recipe that may be converted into a Meal
//   - ShoppingListItem: an aggregated ingredient line derived from a WeekPlan
//
// # Design Principles
//
//  1. **One snapshot**: the Document is replaced wholesale on every change
//  2. **References by ID**: WeekPlans and ShoppingListItems point at Meals by
//     ID string, never by pointer, so the model is acyclic
//  3. **Wire compatibility**: JSON field names match the household's existing
//     exports (camelCase, `pickyEater`, `shoppingLists`)
//  4. **Values, not pointers**: optional scalars use pointers only where
//     "absent" differs from zero (rating, cost, prep time)
package models
