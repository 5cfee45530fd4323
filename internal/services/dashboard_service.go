package services

import (
	"ntd/internal/storage"
	"sync"
)

const appStateBase = "app_state"

// Per-day counters zeroed by the daily reset. Targets stay out of this
// list, they do not change at midnight.
var dailyCounterKeys = []string{
	"calories_eaten",
	"calories_burned",
	"calories_left",
	"walking_calories",
	"activity_calories",
	"carbs_current",
	"protein_current",
	"fat_current",
}

var targetKeys = []string{
	"carbs_target",
	"protein_target",
	"fat_target",
}

// DashboardSummary is the counter snapshot served to the dashboard surface.
type DashboardSummary struct {
	CaloriesEaten    int `json:"calories_eaten"`
	CaloriesBurned   int `json:"calories_burned"`
	CaloriesLeft     int `json:"calories_left"`
	WalkingCalories  int `json:"walking_calories"`
	ActivityCalories int `json:"activity_calories"`
	CarbsCurrent     int `json:"carbs_current"`
	ProteinCurrent   int `json:"protein_current"`
	FatCurrent       int `json:"fat_current"`
	CarbsTarget      int `json:"carbs_target"`
	ProteinTarget    int `json:"protein_target"`
	FatTarget        int `json:"fat_target"`
}

type DashboardServiceInterface interface {
	Summary() DashboardSummary
	SetCounter(key string, value int) bool
	ResetDaily()
}

// DashboardService owns the per-day numeric counters. They live in the
// process-wide app state namespace, not a per-user partition, mirroring the
// single-dashboard model of the host application.
type DashboardService struct {
	mu    sync.Mutex
	store *storage.Store
}

func NewDashboardService(store *storage.Store) DashboardServiceInterface {
	return &DashboardService{store: store}
}

func (ds *DashboardService) namespace() *storage.Namespace {
	return ds.store.Open(appStateBase, storage.DefaultScope)
}

func (ds *DashboardService) Summary() DashboardSummary {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ns := ds.namespace()
	return DashboardSummary{
		CaloriesEaten:    ns.GetInt("calories_eaten", 0),
		CaloriesBurned:   ns.GetInt("calories_burned", 0),
		CaloriesLeft:     ns.GetInt("calories_left", 0),
		WalkingCalories:  ns.GetInt("walking_calories", 0),
		ActivityCalories: ns.GetInt("activity_calories", 0),
		CarbsCurrent:     ns.GetInt("carbs_current", 0),
		ProteinCurrent:   ns.GetInt("protein_current", 0),
		FatCurrent:       ns.GetInt("fat_current", 0),
		CarbsTarget:      ns.GetInt("carbs_target", 0),
		ProteinTarget:    ns.GetInt("protein_target", 0),
		FatTarget:        ns.GetInt("fat_target", 0),
	}
}

// SetCounter updates one known counter or target. Unknown keys are rejected
// so arbitrary state cannot leak into the app namespace.
func (ds *DashboardService) SetCounter(key string, value int) bool {
	if !isKnownCounter(key) {
		return false
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.namespace().PutInt(key, value)
	return true
}

// ResetDaily zeroes every per-day counter and leaves targets untouched.
func (ds *DashboardService) ResetDaily() {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ns := ds.namespace()
	for _, key := range dailyCounterKeys {
		ns.PutInt(key, 0)
	}
}

func isKnownCounter(key string) bool {
	for _, k := range dailyCounterKeys {
		if k == key {
			return true
		}
	}
	for _, k := range targetKeys {
		if k == key {
			return true
		}
	}
	return false
}
