package services

import (
	"ntd/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesService_AddAndList(t *testing.T) {
	fix := newFixture(t)
	favorites := fix.favoritesService()

	require.True(t, favorites.Add(models.FoodItem{ID: "food-1", Name: "Adobo", Calories: 300}))
	assert.True(t, favorites.IsFavorite("food-1"))

	items := favorites.List()
	require.Len(t, items, 1)
	assert.Equal(t, "Adobo", items[0].Name)
}

func TestFavoritesService_AddWithoutIDRefused(t *testing.T) {
	fix := newFixture(t)
	favorites := fix.favoritesService()

	assert.False(t, favorites.Add(models.FoodItem{Name: "Adobo"}))
	assert.Empty(t, favorites.List())
	assert.Equal(t, 1, fix.logger.LogCount("warn"))
}

func TestFavoritesService_Remove(t *testing.T) {
	fix := newFixture(t)
	favorites := fix.favoritesService()
	favorites.Add(models.FoodItem{ID: "food-1", Name: "Adobo"})

	assert.True(t, favorites.Remove("food-1"))
	assert.False(t, favorites.IsFavorite("food-1"))
	assert.False(t, favorites.Remove("food-1"))
}

func TestFavoritesService_ScopesAreIsolated(t *testing.T) {
	fix := newFixture(t)
	favorites := fix.favoritesService()

	fix.session.SetActive("alice@example.com")
	favorites.Add(models.FoodItem{ID: "food-1", Name: "Adobo"})

	fix.session.SetActive("bob@example.com")
	assert.False(t, favorites.IsFavorite("food-1"))
	assert.Empty(t, favorites.List())
}

func TestFavoritesService_SurviveDailyReset(t *testing.T) {
	fix := newFixture(t)
	favorites := fix.favoritesService()
	meals := fix.mealService()
	dashboard := fix.dashboardService()

	favorites.Add(models.FoodItem{ID: "food-1", Name: "Adobo"})

	reset := NewResetService(fix.store, meals, dashboard, fix.cache, fix.metrics, fix.logger)
	reset.ForceReset()

	assert.True(t, favorites.IsFavorite("food-1"), "favorites must outlive the daily reset")
}
