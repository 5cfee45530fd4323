package services

import (
	"ntd/internal/models"
	"ntd/internal/providers"
	"ntd/internal/session"
	"ntd/internal/storage"
	"sync"

	json "github.com/goccy/go-json"
)

const (
	mealLedgerBase = "meal_ledger"
	ledgerBlobKey  = "meal_calories"

	// Budget used for rows created while rebuilding the ledger from the
	// added-foods registry, when no explicit budget is known.
	syncDefaultBudget = 500
)

type MealServiceInterface interface {
	AddFood(category string, item models.FoodItem, budget float64)
	RemoveFood(category string, item models.FoodItem) bool
	SetBudget(category string, budget float64)
	MealState(category string) (*models.MealCategoryState, bool)
	Ledger() map[string]*models.MealCategoryState
	TotalEaten() float64
	SyncWithAdded(added AddedServiceInterface)
	ClearAll()
	ClearScope(scope string)
}

// MealService is the per-category calorie ledger. The whole ledger persists
// as one JSON blob per user scope; every mutation is a read-modify-write of
// that blob under the service mutex. Storage failures degrade to an empty
// ledger; meal data is advisory, not transactional.
type MealService struct {
	mu      sync.Mutex
	store   *storage.Store
	session *session.Session
	logger  providers.Logger
}

func NewMealService(store *storage.Store, sess *session.Session, logger providers.Logger) MealServiceInterface {
	return &MealService{
		store:   store,
		session: sess,
		logger:  logger,
	}
}

func (ms *MealService) namespace() *storage.Namespace {
	return ms.store.Open(mealLedgerBase, ms.session.Scope())
}

func (ms *MealService) loadLedger(ns *storage.Namespace) map[string]*models.MealCategoryState {
	raw, ok := ns.Get(ledgerBlobKey)
	if !ok {
		return make(map[string]*models.MealCategoryState)
	}

	var ledger map[string]*models.MealCategoryState
	if err := json.Unmarshal([]byte(raw), &ledger); err != nil {
		ms.logger.Errorf(providers.TypeApp, "Corrupt meal ledger, starting empty: %s", err)
		return make(map[string]*models.MealCategoryState)
	}
	for _, state := range ledger {
		if state.EatenFoods == nil {
			state.EatenFoods = make([]models.FoodItem, 0)
		}
	}
	return ledger
}

func (ms *MealService) saveLedger(ns *storage.Namespace, ledger map[string]*models.MealCategoryState) {
	raw, err := json.Marshal(ledger)
	if err != nil {
		ms.logger.Errorf(providers.TypeApp, "Cannot serialize meal ledger: %s", err)
		return
	}
	ns.Put(ledgerBlobKey, string(raw))
}

// AddFood appends the item to the category row, creating the row with the
// supplied budget when the category is untouched.
func (ms *MealService) AddFood(category string, item models.FoodItem, budget float64) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ns := ms.namespace()
	ledger := ms.loadLedger(ns)

	state, ok := ledger[category]
	if !ok {
		state = models.NewMealCategoryState(category, budget)
		ledger[category] = state
	}
	state.AddFood(item)
	ms.saveLedger(ns, ledger)

	ms.logger.Debugf(providers.TypeApp, "Added %s to %s, eaten %.0f/%.0f kcal",
		item.Name, category, state.EatenCalories, state.BudgetCalories)
}

// RemoveFood removes the first name-match from the category row. A missing
// row or missing match is a reported no-op.
func (ms *MealService) RemoveFood(category string, item models.FoodItem) bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ns := ms.namespace()
	ledger := ms.loadLedger(ns)

	state, ok := ledger[category]
	if !ok {
		ms.logger.Warnf(providers.TypeApp, "Meal category not found: %s", category)
		return false
	}

	removed := state.RemoveFood(item)
	if removed {
		ms.saveLedger(ns, ledger)
	}
	return removed
}

// SetBudget creates the row with a zero eaten total or updates an existing
// row's budget. Eaten calories are never touched.
func (ms *MealService) SetBudget(category string, budget float64) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ns := ms.namespace()
	ledger := ms.loadLedger(ns)

	if state, ok := ledger[category]; ok {
		state.BudgetCalories = budget
	} else {
		ledger[category] = models.NewMealCategoryState(category, budget)
	}
	ms.saveLedger(ns, ledger)
}

func (ms *MealService) MealState(category string) (*models.MealCategoryState, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	state, ok := ms.loadLedger(ms.namespace())[category]
	return state, ok
}

func (ms *MealService) Ledger() map[string]*models.MealCategoryState {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.loadLedger(ms.namespace())
}

func (ms *MealService) TotalEaten() float64 {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	var total float64
	for _, state := range ms.loadLedger(ms.namespace()) {
		total += state.EatenCalories
	}
	return total
}

// SyncWithAdded rebuilds the ledger from the added-foods registry, grouping
// by meal category. Rows created here get the default budget; callers are
// expected to follow up with SetBudget when the real budgets are known.
func (ms *MealService) SyncWithAdded(added AddedServiceInterface) {
	items := added.Items()

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ledger := make(map[string]*models.MealCategoryState)
	for _, item := range items {
		if item.MealCategory == "" {
			continue
		}
		state, ok := ledger[item.MealCategory]
		if !ok {
			state = models.NewMealCategoryState(item.MealCategory, syncDefaultBudget)
			ledger[item.MealCategory] = state
		}
		state.AddFood(item)
	}

	ns := ms.namespace()
	ms.saveLedger(ns, ledger)
	ms.logger.Infof(providers.TypeApp, "Synced meal ledger from %d added foods into %d categories", len(items), len(ledger))
}

// ClearAll drops every category row for the active scope.
func (ms *MealService) ClearAll() {
	ms.ClearScope(ms.session.Scope())
}

// ClearScope erases the given scope's ledger partition.
func (ms *MealService) ClearScope(scope string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if err := ms.store.Open(mealLedgerBase, scope).Clear(); err != nil {
		ms.logger.Errorf(providers.TypeApp, "Cannot clear meal ledger for %s: %s", scope, err)
	}
}
