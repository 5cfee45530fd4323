package services

import (
	"context"
	"fmt"
	"ntd/internal/cache"
	"ntd/internal/clients"
	"ntd/internal/models"
	"ntd/internal/providers"
	"ntd/internal/session"
	"ntd/internal/storage"
	"ntd/internal/structures"
)

const recommendCacheBase = "recommend_cache"

type RecommendationServiceInterface interface {
	Recommendations(ctx context.Context, mealCategory string, profile models.UserProfile) ([]models.RecommendedFood, error)
	InvalidateProfile(profile models.UserProfile)
	ClearCache() error
}

// RecommendationService serves AI meal recommendations through a long-lived
// durable cache. One remote fetch produces all four meal categories; each is
// cached under its own (category, profile signature) key so later reads for
// any category hit without another round trip.
type RecommendationService struct {
	client  clients.RecommendationClientInterface
	cache   *cache.TTLCache[[]models.RecommendedFood]
	metrics providers.MetricsProviderInterface
	logger  providers.Logger
}

func NewRecommendationService(conf *structures.Config, client clients.RecommendationClientInterface, store *storage.Store, sess *session.Session, metrics providers.MetricsProviderInterface, logger providers.Logger) RecommendationServiceInterface {
	resolve := func() *storage.Namespace {
		return store.Open(recommendCacheBase, sess.Scope())
	}
	return &RecommendationService{
		client:  client,
		cache:   cache.NewTTLCache[[]models.RecommendedFood]("recommendation", conf.Caches.RecommendationTTL, resolve, metrics, nil),
		metrics: metrics,
		logger:  logger,
	}
}

func cacheKey(mealCategory string, profile models.UserProfile) string {
	return mealCategory + "_" + profile.Signature()
}

func (rs *RecommendationService) Recommendations(ctx context.Context, mealCategory string, profile models.UserProfile) ([]models.RecommendedFood, error) {
	if foods, ok := rs.cache.Get(cacheKey(mealCategory, profile)); ok {
		return foods, nil
	}

	set, err := rs.client.FetchRecommendations(ctx, buildPrompt(profile))
	if err != nil {
		rs.metrics.IncRemoteErrors("recommendation")
		return nil, err
	}

	byCategory := map[string][]models.RecommendedFood{
		models.MealBreakfast: set.Breakfast,
		models.MealLunch:     set.Lunch,
		models.MealDinner:    set.Dinner,
		models.MealSnacks:    set.Snacks,
	}
	for category, foods := range byCategory {
		if err := rs.cache.Put(cacheKey(category, profile), foods); err != nil {
			rs.logger.Errorf(providers.TypeApp, "Cannot cache recommendations for %s: %s", category, err)
		}
	}

	return byCategory[mealCategory], nil
}

// InvalidateProfile drops the cached entries for every meal category of one
// profile signature. Called after profile edits that affect recommendations.
func (rs *RecommendationService) InvalidateProfile(profile models.UserProfile) {
	for _, category := range models.MealCategories {
		rs.cache.Invalidate(cacheKey(category, profile))
	}
}

func (rs *RecommendationService) ClearCache() error {
	return rs.cache.Clear()
}

func buildPrompt(profile models.UserProfile) string {
	return fmt.Sprintf(
		"Suggest breakfast, lunch, dinner and snack foods for a %s aged %d with BMI %.1f (%s). "+
			"Return JSON with name, calories, protein_g, fat_g, carbs_g, serving_size, diet_type and description per food.",
		profile.Gender, profile.Age, profile.BMI, profile.BMICategory)
}
