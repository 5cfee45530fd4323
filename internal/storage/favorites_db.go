package storage

import (
	"database/sql"
	"fmt"
	"ntd/internal/models"
	"ntd/internal/structures"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// FavoritesDB persists the favorites registry in SQLite, partitioned by the
// user_email column. Favorites outlive daily resets and namespace flushes,
// which is why they get their own store instead of a preference blob.
type FavoritesDB struct {
	db *sql.DB
}

func NewFavoritesDB(conf *structures.Config) (*FavoritesDB, error) {
	dir := filepath.Dir(conf.Storage.FavoritesDB)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", conf.Storage.FavoritesDB+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	f := &FavoritesDB{db: db}
	if err := f.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return f, nil
}

func (f *FavoritesDB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS favorites (
		user_email    TEXT NOT NULL,
		food_id       TEXT NOT NULL,
		name          TEXT NOT NULL,
		calories      REAL NOT NULL DEFAULT 0,
		serving_size  REAL NOT NULL DEFAULT 0,
		serving_unit  TEXT NOT NULL DEFAULT '',
		meal_category TEXT NOT NULL DEFAULT '',
		added_at      TEXT NOT NULL,
		PRIMARY KEY (user_email, food_id)
	);
	CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_email, added_at DESC);
	`
	_, err := f.db.Exec(schema)
	return err
}

// Upsert inserts or replaces the favorite for (scope, item.ID).
func (f *FavoritesDB) Upsert(scope string, item models.FoodItem) error {
	_, err := f.db.Exec(`
		INSERT INTO favorites (user_email, food_id, name, calories, serving_size, serving_unit, meal_category, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_email, food_id) DO UPDATE SET
			name = excluded.name,
			calories = excluded.calories,
			serving_size = excluded.serving_size,
			serving_unit = excluded.serving_unit,
			meal_category = excluded.meal_category`,
		scope, item.ID, item.Name, item.Calories, item.ServingSize, item.ServingUnit,
		item.MealCategory, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// Delete removes the favorite with the exact food ID. Returns whether a row
// was deleted.
func (f *FavoritesDB) Delete(scope, foodID string) (bool, error) {
	res, err := f.db.Exec(`DELETE FROM favorites WHERE user_email = ? AND food_id = ?`, scope, foodID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (f *FavoritesDB) Has(scope, foodID string) (bool, error) {
	var one int
	err := f.db.QueryRow(`SELECT 1 FROM favorites WHERE user_email = ? AND food_id = ?`, scope, foodID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns the scope's favorites, most recently added first.
func (f *FavoritesDB) List(scope string) ([]models.FoodItem, error) {
	rows, err := f.db.Query(`
		SELECT food_id, name, calories, serving_size, serving_unit, meal_category
		FROM favorites WHERE user_email = ? ORDER BY added_at DESC`, scope)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.FoodItem, 0)
	for rows.Next() {
		var item models.FoodItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Calories, &item.ServingSize, &item.ServingUnit, &item.MealCategory); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ClearScope removes every favorite belonging to one scope.
func (f *FavoritesDB) ClearScope(scope string) error {
	_, err := f.db.Exec(`DELETE FROM favorites WHERE user_email = ?`, scope)
	return err
}

func (f *FavoritesDB) Close() error {
	return f.db.Close()
}
