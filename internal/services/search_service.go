package services

import (
	"context"
	"ntd/internal/cache"
	"ntd/internal/clients"
	"ntd/internal/models"
	"ntd/internal/providers"
	"ntd/internal/storage"
	"ntd/internal/structures"
	"sort"
	"strings"
)

const searchCacheBase = "food_search_cache"

type SearchServiceInterface interface {
	Search(ctx context.Context, categories []string, maxCalories int) ([]models.FoodItem, error)
	ClearCache() error
}

// SearchService is a short-lived read-through cache over the remote food
// database. Results are keyed by the category set alone, not the calorie
// ceiling, matching the granularity the product shipped with.
type SearchService struct {
	client  clients.FoodSearchClientInterface
	cache   *cache.TTLCache[[]models.FoodItem]
	metrics providers.MetricsProviderInterface
}

func NewSearchService(conf *structures.Config, client clients.FoodSearchClientInterface, store *storage.Store, metrics providers.MetricsProviderInterface) SearchServiceInterface {
	resolve := func() *storage.Namespace {
		return store.Open(searchCacheBase, storage.DefaultScope)
	}
	return &SearchService{
		client:  client,
		cache:   cache.NewTTLCache[[]models.FoodItem]("search", conf.Caches.SearchTTL, resolve, metrics, nil),
		metrics: metrics,
	}
}

func searchKey(categories []string) string {
	sorted := make([]string, len(categories))
	copy(sorted, categories)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

func (ss *SearchService) Search(ctx context.Context, categories []string, maxCalories int) ([]models.FoodItem, error) {
	key := searchKey(categories)
	if items, ok := ss.cache.Get(key); ok {
		return items, nil
	}

	items, err := ss.client.SearchFoods(ctx, categories, maxCalories)
	if err != nil {
		ss.metrics.IncRemoteErrors("food_search")
		return nil, err
	}

	// Best effort: a failed cache write must not fail the search.
	_ = ss.cache.Put(key, items)
	return items, nil
}

func (ss *SearchService) ClearCache() error {
	return ss.cache.Clear()
}
