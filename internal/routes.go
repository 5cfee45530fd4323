package internal

import (
	"net/http"
	"ntd/internal/controllers"
	"ntd/internal/providers"
	"ntd/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, lookupController *controllers.LookupController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/meals", http.HandlerFunc(apiController.GetMeals))
	routers.Get("/meals/summary", http.HandlerFunc(apiController.GetMealSummary))
	routers.Post("/meals/add", http.HandlerFunc(apiController.AddMealFood))
	routers.Post("/meals/remove", http.HandlerFunc(apiController.RemoveMealFood))
	routers.Post("/meals/budget", http.HandlerFunc(apiController.SetMealBudget))
	routers.Post("/meals/sync", http.HandlerFunc(apiController.SyncMeals))

	routers.Get("/added", http.HandlerFunc(apiController.GetAddedFoods))
	routers.Get("/added/contains", http.HandlerFunc(apiController.ContainsAddedFood))
	routers.Post("/added/add", http.HandlerFunc(apiController.AddAddedFood))
	routers.Post("/added/remove", http.HandlerFunc(apiController.RemoveAddedFood))

	routers.Get("/favorites", http.HandlerFunc(apiController.GetFavorites))
	routers.Get("/favorites/contains", http.HandlerFunc(apiController.ContainsFavorite))
	routers.Post("/favorites/add", http.HandlerFunc(apiController.AddFavorite))
	routers.Delete("/favorites/remove", http.HandlerFunc(apiController.RemoveFavorite))

	routers.Get("/recommendations", http.HandlerFunc(lookupController.GetRecommendations))
	routers.Delete("/recommendations/invalidate", http.HandlerFunc(lookupController.InvalidateRecommendations))
	routers.Get("/search", http.HandlerFunc(lookupController.SearchFoods))
	routers.Get("/image", http.HandlerFunc(lookupController.GetImage))

	routers.Get("/dashboard", http.HandlerFunc(apiController.GetDashboard))
	routers.Post("/dashboard/counter", http.HandlerFunc(apiController.SetDashboardCounter))

	routers.Post("/session/login", http.HandlerFunc(apiController.Login))
	routers.Post("/session/logout", http.HandlerFunc(apiController.Logout))

	routers.Post("/reset", http.HandlerFunc(apiController.ForceReset))
	routers.Get("/reset/status", http.HandlerFunc(apiController.GetResetStatus))
	return routers
}
