package models

import "math"

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnacks    = "snacks"
)

// MealCategories lists the four budget-accounting categories in display order.
var MealCategories = []string{MealBreakfast, MealLunch, MealDinner, MealSnacks}

// calorieEpsilon bounds the calorie drift tolerated by the exact match tier.
// Client-side rounding of display values can shift calories by fractions.
const calorieEpsilon = 1.0

// FoodItem is a single consumable entry. Identity for removal purposes is the
// name; (name, meal category, calories within epsilon) is the stronger match
// applied opportunistically.
type FoodItem struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Calories     float64 `json:"calories"`
	ServingSize  float64 `json:"serving_size"`
	ServingUnit  string  `json:"serving_unit"`
	Protein      float64 `json:"protein_g,omitempty"`
	Carbs        float64 `json:"carbs_g,omitempty"`
	Fat          float64 `json:"fat_g,omitempty"`
	Fiber        float64 `json:"fiber_g,omitempty"`
	MealCategory string  `json:"meal_category,omitempty"`
}

// MatchPredicate reports whether a stored item matches the item requested for
// removal. Predicates are evaluated as an ordered fallback chain.
type MatchPredicate func(stored, requested FoodItem) bool

// RemovalTiers is the fallback matching policy for the added-items registry,
// loosest last. The first tier that yields at least one match is the one
// applied; all matches at that tier are removed.
var RemovalTiers = []MatchPredicate{
	func(stored, requested FoodItem) bool {
		return stored.Name == requested.Name &&
			stored.MealCategory == requested.MealCategory &&
			math.Abs(stored.Calories-requested.Calories) < calorieEpsilon
	},
	func(stored, requested FoodItem) bool {
		return stored.Name == requested.Name &&
			stored.MealCategory == requested.MealCategory
	},
	func(stored, requested FoodItem) bool {
		return stored.Name == requested.Name
	},
}
