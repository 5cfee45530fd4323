package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/goccy/go-json"
)

func TestMealCategoryState_AddFood(t *testing.T) {
	state := NewMealCategoryState(MealLunch, 500)

	state.AddFood(FoodItem{Name: "Adobo", Calories: 200})
	state.AddFood(FoodItem{Name: "Rice", Calories: 150})

	assert.Equal(t, 350.0, state.EatenCalories)
	assert.Equal(t, 150.0, state.CaloriesLeft())
	assert.Len(t, state.EatenFoods, 2)
}

func TestMealCategoryState_RemoveFood(t *testing.T) {
	state := NewMealCategoryState(MealLunch, 500)
	state.AddFood(FoodItem{Name: "Adobo", Calories: 200})
	state.AddFood(FoodItem{Name: "Rice", Calories: 150})

	removed := state.RemoveFood(FoodItem{Name: "Adobo", Calories: 200})
	assert.True(t, removed)
	assert.Equal(t, 150.0, state.EatenCalories)
	assert.Len(t, state.EatenFoods, 1)
	assert.Equal(t, "Rice", state.EatenFoods[0].Name)
}

func TestMealCategoryState_RemoveFoodMissing(t *testing.T) {
	state := NewMealCategoryState(MealDinner, 600)
	state.AddFood(FoodItem{Name: "Sinigang", Calories: 250})

	removed := state.RemoveFood(FoodItem{Name: "Lumpia", Calories: 100})
	assert.False(t, removed)
	assert.Equal(t, 250.0, state.EatenCalories)
}

func TestMealCategoryState_RemoveClampsAtZero(t *testing.T) {
	state := NewMealCategoryState(MealSnacks, 200)
	state.AddFood(FoodItem{Name: "Banana", Calories: 90})

	// The requested item claims more calories than were ever added; the
	// total floors at zero instead of going negative.
	removed := state.RemoveFood(FoodItem{Name: "Banana", Calories: 500})
	assert.True(t, removed)
	assert.Equal(t, 0.0, state.EatenCalories)
}

func TestMealCategoryState_JSONRoundTrip(t *testing.T) {
	state := NewMealCategoryState(MealBreakfast, 400)
	state.AddFood(FoodItem{Name: "Tapsilog", Calories: 350, MealCategory: MealBreakfast})

	raw, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded MealCategoryState
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, state.Category, decoded.Category)
	assert.Equal(t, state.BudgetCalories, decoded.BudgetCalories)
	assert.Equal(t, state.EatenCalories, decoded.EatenCalories)
	require.Len(t, decoded.EatenFoods, 1)
	assert.Equal(t, "Tapsilog", decoded.EatenFoods[0].Name)
}
