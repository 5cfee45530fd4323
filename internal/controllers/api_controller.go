package controllers

import (
	"net/http"
	"ntd/internal/models"
	"ntd/internal/providers"
	"ntd/internal/services"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger    providers.Logger
	meals     services.MealServiceInterface
	added     services.AddedServiceInterface
	favorites services.FavoritesServiceInterface
	dashboard services.DashboardServiceInterface
	account   services.AccountServiceInterface
	reset     services.ResetServiceInterface
	cache     providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, meals services.MealServiceInterface, added services.AddedServiceInterface, favorites services.FavoritesServiceInterface, dashboard services.DashboardServiceInterface, account services.AccountServiceInterface, reset services.ResetServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:    logger,
		meals:     meals,
		added:     added,
		favorites: favorites,
		dashboard: dashboard,
		account:   account,
		reset:     reset,
		cache:     cache,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		writeRawJSON(w, data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)
	writeRawJSON(w, gson)
}

func writeRawJSON(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	return true
}

func (ac *ApiController) invalidateScopeReads() {
	scope := ac.account.ActiveScope()
	ac.cache.Del("meals:" + scope)
	ac.cache.Del("added:" + scope)
	ac.cache.Del("favorites:" + scope)
	ac.cache.Del("dashboard")
}

type mealMutationRequest struct {
	Category string          `json:"meal_category"`
	Item     models.FoodItem `json:"item"`
	Budget   float64         `json:"budget_calories"`
}

func (ac *ApiController) AddMealFood(w http.ResponseWriter, r *http.Request) {
	var payload mealMutationRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Category == "" || payload.Item.Name == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ac.meals.AddFood(payload.Category, payload.Item, payload.Budget)
	ac.invalidateScopeReads()
	w.WriteHeader(http.StatusCreated)
}

func (ac *ApiController) RemoveMealFood(w http.ResponseWriter, r *http.Request) {
	var payload mealMutationRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	removed := ac.meals.RemoveFood(payload.Category, payload.Item)
	if removed {
		ac.invalidateScopeReads()
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

func (ac *ApiController) SetMealBudget(w http.ResponseWriter, r *http.Request) {
	var payload mealMutationRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Category == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ac.meals.SetBudget(payload.Category, payload.Budget)
	ac.invalidateScopeReads()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) GetMeals(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "meals:"+ac.account.ActiveScope(), func() (any, error) {
		return ac.meals.Ledger(), nil
	})
}

type mealSummary struct {
	TotalEaten float64            `json:"total_eaten"`
	Left       map[string]float64 `json:"calories_left"`
}

func (ac *ApiController) GetMealSummary(w http.ResponseWriter, r *http.Request) {
	summary := mealSummary{Left: make(map[string]float64)}
	for category, state := range ac.meals.Ledger() {
		summary.TotalEaten += state.EatenCalories
		summary.Left[category] = state.CaloriesLeft()
	}
	writeJSON(w, http.StatusOK, summary)
}

func (ac *ApiController) SyncMeals(w http.ResponseWriter, r *http.Request) {
	ac.meals.SyncWithAdded(ac.added)
	ac.invalidateScopeReads()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) AddAddedFood(w http.ResponseWriter, r *http.Request) {
	var item models.FoodItem
	if !decodeBody(w, r, &item) {
		return
	}
	if item.Name == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	added := ac.added.Add(item)
	if added {
		ac.invalidateScopeReads()
	}
	writeJSON(w, http.StatusOK, map[string]bool{"added": added})
}

func (ac *ApiController) RemoveAddedFood(w http.ResponseWriter, r *http.Request) {
	var item models.FoodItem
	if !decodeBody(w, r, &item) {
		return
	}

	count, ok := ac.added.Remove(item)
	if ok {
		ac.invalidateScopeReads()
	}
	writeJSON(w, http.StatusOK, map[string]any{"removed": ok, "count": count})
}

func (ac *ApiController) GetAddedFoods(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "added:"+ac.account.ActiveScope(), func() (any, error) {
		return ac.added.Items(), nil
	})
}

func (ac *ApiController) ContainsAddedFood(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	member := ac.added.IsMember(models.FoodItem{Name: name})
	writeJSON(w, http.StatusOK, map[string]bool{"member": member})
}

func (ac *ApiController) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var item models.FoodItem
	if !decodeBody(w, r, &item) {
		return
	}

	added := ac.favorites.Add(item)
	if added {
		ac.invalidateScopeReads()
	}
	writeJSON(w, http.StatusOK, map[string]bool{"added": added})
}

func (ac *ApiController) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	removed := ac.favorites.Remove(id)
	if removed {
		ac.invalidateScopeReads()
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

func (ac *ApiController) GetFavorites(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "favorites:"+ac.account.ActiveScope(), func() (any, error) {
		return ac.favorites.List(), nil
	})
}

func (ac *ApiController) ContainsFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	writeJSON(w, http.StatusOK, map[string]bool{"favorite": ac.favorites.IsFavorite(id)})
}

func (ac *ApiController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "dashboard", func() (any, error) {
		return ac.dashboard.Summary(), nil
	})
}

type counterRequest struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

func (ac *ApiController) SetDashboardCounter(w http.ResponseWriter, r *http.Request) {
	var payload counterRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	if !ac.dashboard.SetCounter(payload.Key, payload.Value) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.cache.Del("dashboard")
	w.WriteHeader(http.StatusNoContent)
}

type loginRequest struct {
	Email string `json:"email"`
}

func (ac *ApiController) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	ac.account.Login(payload.Email)
	ac.invalidateScopeReads()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) Logout(w http.ResponseWriter, r *http.Request) {
	scope := ac.account.Logout()
	ac.cache.Del("meals:" + scope)
	ac.cache.Del("added:" + scope)
	ac.cache.Del("favorites:" + scope)
	ac.invalidateScopeReads()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) ForceReset(w http.ResponseWriter, r *http.Request) {
	ac.reset.ForceReset()
	writeJSON(w, http.StatusOK, map[string]string{"last_reset_date": ac.reset.LastResetDate()})
}

func (ac *ApiController) GetResetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"last_reset_date": ac.reset.LastResetDate(),
		"is_new_day":      ac.reset.IsNewDay(),
	})
}
