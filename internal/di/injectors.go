//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"ntd/internal"
	"ntd/internal/cache"
	"ntd/internal/clients"
	"ntd/internal/controllers"
	"ntd/internal/providers"
	"ntd/internal/scheduler"
	"ntd/internal/services"
	"ntd/internal/session"
	"ntd/internal/storage"
	"ntd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,
		providers.NewMetricsProvider,

		storage.NewCompressor,
		storage.NewStore,
		storage.NewFavoritesDB,
		session.NewSession,

		clients.NewRecommendationClient,
		clients.NewFoodSearchClient,
		clients.NewImageFetcher,

		cache.NewImageCache,

		services.NewMealService,
		services.NewAddedService,
		services.NewFavoritesService,
		services.NewDashboardService,
		services.NewAccountService,
		services.NewResetService,
		services.NewRecommendationService,
		services.NewSearchService,

		scheduler.NewScheduler,
		controllers.NewApiController,
		controllers.NewLookupController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
