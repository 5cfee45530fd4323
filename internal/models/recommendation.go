package models

import "fmt"

// RecommendedFood is the shape produced by the AI recommendation collaborator.
type RecommendedFood struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein_g"`
	Fat         float64 `json:"fat_g"`
	Carbs       float64 `json:"carbs_g"`
	ServingSize string  `json:"serving_size"`
	DietType    string  `json:"diet_type"`
	Description string  `json:"description"`
}

// RecommendationSet groups recommended foods by meal category.
type RecommendationSet struct {
	Breakfast []RecommendedFood `json:"breakfast"`
	Lunch     []RecommendedFood `json:"lunch"`
	Dinner    []RecommendedFood `json:"dinner"`
	Snacks    []RecommendedFood `json:"snacks"`
}

// UserProfile carries the attributes the recommendation prompt is built from.
type UserProfile struct {
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmi_category"`
	Age         int     `json:"age"`
	Gender      string  `json:"gender"`
}

// Signature discretizes the profile into the cache key component. Profiles
// differing only in attributes outside this list share a cache entry; that
// granularity is part of the product contract and must stay stable.
func (p UserProfile) Signature() string {
	return fmt.Sprintf("%.1f_%s_%d_%s", p.BMI, p.BMICategory, p.Age, p.Gender)
}
