package storage

import (
	"ntd/internal/models"
	"ntd/internal/structures"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFavoritesDB(t *testing.T) *FavoritesDB {
	t.Helper()
	conf := &structures.Config{}
	conf.Storage.FavoritesDB = filepath.Join(t.TempDir(), "favorites.db")

	db, err := NewFavoritesDB(conf)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestFavoritesDB_UpsertAndHas(t *testing.T) {
	db := newTestFavoritesDB(t)

	item := models.FoodItem{ID: "food-1", Name: "Adobo", Calories: 300}
	require.NoError(t, db.Upsert("user@example.com", item))

	has, err := db.Has("user@example.com", "food-1")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = db.Has("user@example.com", "food-2")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestFavoritesDB_UpsertUpdatesExisting(t *testing.T) {
	db := newTestFavoritesDB(t)

	require.NoError(t, db.Upsert("user@example.com", models.FoodItem{ID: "food-1", Name: "Adobo", Calories: 300}))
	require.NoError(t, db.Upsert("user@example.com", models.FoodItem{ID: "food-1", Name: "Adobo", Calories: 315}))

	items, err := db.List("user@example.com")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 315.0, items[0].Calories)
}

func TestFavoritesDB_Delete(t *testing.T) {
	db := newTestFavoritesDB(t)
	require.NoError(t, db.Upsert("user@example.com", models.FoodItem{ID: "food-1", Name: "Adobo"}))

	removed, err := db.Delete("user@example.com", "food-1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = db.Delete("user@example.com", "food-1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFavoritesDB_ScopesAreIsolated(t *testing.T) {
	db := newTestFavoritesDB(t)
	require.NoError(t, db.Upsert("alice@example.com", models.FoodItem{ID: "food-1", Name: "Adobo"}))

	has, err := db.Has("bob@example.com", "food-1")
	require.NoError(t, err)
	assert.False(t, has)

	items, err := db.List("bob@example.com")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFavoritesDB_ClearScope(t *testing.T) {
	db := newTestFavoritesDB(t)
	require.NoError(t, db.Upsert("alice@example.com", models.FoodItem{ID: "food-1", Name: "Adobo"}))
	require.NoError(t, db.Upsert("alice@example.com", models.FoodItem{ID: "food-2", Name: "Sinigang"}))
	require.NoError(t, db.Upsert("bob@example.com", models.FoodItem{ID: "food-3", Name: "Lumpia"}))

	require.NoError(t, db.ClearScope("alice@example.com"))

	items, err := db.List("alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = db.List("bob@example.com")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
