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
	addedFoodsBase    = "added_foods"
	addedFoodsBlobKey = "added_foods"
)

type AddedServiceInterface interface {
	Add(item models.FoodItem) bool
	Remove(item models.FoodItem) (int, bool)
	IsMember(item models.FoodItem) bool
	Items() []models.FoodItem
	Clear()
	ClearScope(scope string)
}

// AddedService is the registry of foods the user has picked. Removal applies
// the ordered fallback tiers from models.RemovalTiers so an item still goes
// away when the client's calorie figure drifted from the stored one.
type AddedService struct {
	mu      sync.Mutex
	store   *storage.Store
	session *session.Session
	logger  providers.Logger
}

func NewAddedService(store *storage.Store, sess *session.Session, logger providers.Logger) AddedServiceInterface {
	return &AddedService{
		store:   store,
		session: sess,
		logger:  logger,
	}
}

func (as *AddedService) namespace() *storage.Namespace {
	return as.store.Open(addedFoodsBase, as.session.Scope())
}

func (as *AddedService) loadItems(ns *storage.Namespace) []models.FoodItem {
	raw, ok := ns.Get(addedFoodsBlobKey)
	if !ok {
		return make([]models.FoodItem, 0)
	}

	var items []models.FoodItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		as.logger.Errorf(providers.TypeApp, "Corrupt added foods list, starting empty: %s", err)
		return make([]models.FoodItem, 0)
	}
	return items
}

func (as *AddedService) saveItems(ns *storage.Namespace, items []models.FoodItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		as.logger.Errorf(providers.TypeApp, "Cannot serialize added foods: %s", err)
		return
	}
	ns.Put(addedFoodsBlobKey, string(raw))
}

// Add appends the item unless one with the same name is already present.
func (as *AddedService) Add(item models.FoodItem) bool {
	as.mu.Lock()
	defer as.mu.Unlock()

	ns := as.namespace()
	items := as.loadItems(ns)
	for _, existing := range items {
		if existing.Name == item.Name {
			return false
		}
	}
	as.saveItems(ns, append(items, item))
	return true
}

// Remove walks the fallback tiers in order and removes every entry matched
// by the first tier that matches anything. Returns the removed count and
// whether any tier succeeded.
func (as *AddedService) Remove(item models.FoodItem) (int, bool) {
	as.mu.Lock()
	defer as.mu.Unlock()

	ns := as.namespace()
	items := as.loadItems(ns)

	for tier, predicate := range models.RemovalTiers {
		kept := items[:0:0]
		removed := 0
		for _, existing := range items {
			if predicate(existing, item) {
				removed++
				continue
			}
			kept = append(kept, existing)
		}
		if removed > 0 {
			as.saveItems(ns, kept)
			as.logger.Debugf(providers.TypeApp, "Removed %d entries for %s at tier %d", removed, item.Name, tier+1)
			return removed, true
		}
	}

	as.logger.Debugf(providers.TypeApp, "No added food matched %s, nothing removed", item.Name)
	return 0, false
}

// IsMember matches by the same primary key Add uses: the name.
func (as *AddedService) IsMember(item models.FoodItem) bool {
	as.mu.Lock()
	defer as.mu.Unlock()

	for _, existing := range as.loadItems(as.namespace()) {
		if existing.Name == item.Name {
			return true
		}
	}
	return false
}

func (as *AddedService) Items() []models.FoodItem {
	as.mu.Lock()
	defer as.mu.Unlock()
	return as.loadItems(as.namespace())
}

func (as *AddedService) Clear() {
	as.ClearScope(as.session.Scope())
}

func (as *AddedService) ClearScope(scope string) {
	as.mu.Lock()
	defer as.mu.Unlock()

	if err := as.store.Open(addedFoodsBase, scope).Clear(); err != nil {
		as.logger.Errorf(providers.TypeApp, "Cannot clear added foods for %s: %s", scope, err)
	}
}
