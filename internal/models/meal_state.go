package models

// MealCategoryState is the per-category accounting row. EatenCalories always
// equals the clamped sum of the listed foods' calories after every mutation.
type MealCategoryState struct {
	Category       string     `json:"meal_category"`
	BudgetCalories float64    `json:"budget_calories"`
	EatenCalories  float64    `json:"eaten_calories"`
	EatenFoods     []FoodItem `json:"eaten_foods"`
}

func NewMealCategoryState(category string, budget float64) *MealCategoryState {
	return &MealCategoryState{
		Category:       category,
		BudgetCalories: budget,
		EatenFoods:     make([]FoodItem, 0),
	}
}

// AddFood appends the item and bumps the eaten total.
func (m *MealCategoryState) AddFood(item FoodItem) {
	m.EatenFoods = append(m.EatenFoods, item)
	m.EatenCalories += item.Calories
}

// RemoveFood drops the first entry whose name equals item.Name and decrements
// the eaten total by the requested item's calories, floored at zero. Returns
// false when nothing matched.
func (m *MealCategoryState) RemoveFood(item FoodItem) bool {
	for i, eaten := range m.EatenFoods {
		if eaten.Name == item.Name {
			m.EatenFoods = append(m.EatenFoods[:i], m.EatenFoods[i+1:]...)
			m.EatenCalories -= item.Calories
			if m.EatenCalories < 0 {
				m.EatenCalories = 0
			}
			return true
		}
	}
	return false
}

func (m *MealCategoryState) CaloriesLeft() float64 {
	return m.BudgetCalories - m.EatenCalories
}
