package services

import (
	"ntd/internal/models"
	"ntd/internal/providers"
	"ntd/internal/session"
	"ntd/internal/storage"
)

type FavoritesServiceInterface interface {
	Add(item models.FoodItem) bool
	Remove(foodID string) bool
	IsFavorite(foodID string) bool
	List() []models.FoodItem
	Clear()
	ClearScope(scope string)
}

// FavoritesService keeps the exact-match favorites registry. A favorite
// points at a specific catalog entry, so membership and removal go by food
// ID only, no fuzzy matching here.
type FavoritesService struct {
	db      *storage.FavoritesDB
	session *session.Session
	logger  providers.Logger
}

func NewFavoritesService(db *storage.FavoritesDB, sess *session.Session, logger providers.Logger) FavoritesServiceInterface {
	return &FavoritesService{
		db:      db,
		session: sess,
		logger:  logger,
	}
}

func (fs *FavoritesService) Add(item models.FoodItem) bool {
	if item.ID == "" {
		fs.logger.Warnf(providers.TypeApp, "Refusing to favorite %q without a food ID", item.Name)
		return false
	}
	if err := fs.db.Upsert(fs.session.Scope(), item); err != nil {
		fs.logger.Errorf(providers.TypeApp, "Cannot add favorite %s: %s", item.Name, err)
		return false
	}
	return true
}

func (fs *FavoritesService) Remove(foodID string) bool {
	removed, err := fs.db.Delete(fs.session.Scope(), foodID)
	if err != nil {
		fs.logger.Errorf(providers.TypeApp, "Cannot remove favorite %s: %s", foodID, err)
		return false
	}
	return removed
}

func (fs *FavoritesService) IsFavorite(foodID string) bool {
	has, err := fs.db.Has(fs.session.Scope(), foodID)
	if err != nil {
		fs.logger.Errorf(providers.TypeApp, "Cannot check favorite %s: %s", foodID, err)
		return false
	}
	return has
}

func (fs *FavoritesService) List() []models.FoodItem {
	items, err := fs.db.List(fs.session.Scope())
	if err != nil {
		fs.logger.Errorf(providers.TypeApp, "Cannot list favorites: %s", err)
		return make([]models.FoodItem, 0)
	}
	return items
}

func (fs *FavoritesService) Clear() {
	fs.ClearScope(fs.session.Scope())
}

func (fs *FavoritesService) ClearScope(scope string) {
	if err := fs.db.ClearScope(scope); err != nil {
		fs.logger.Errorf(providers.TypeApp, "Cannot clear favorites for %s: %s", scope, err)
	}
}
