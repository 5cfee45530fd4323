package controllers

import (
	"image/png"
	"net/http"
	"strconv"
	"strings"

	"ntd/internal/cache"
	"ntd/internal/clients"
	"ntd/internal/models"
	"ntd/internal/providers"
	"ntd/internal/services"
)

// LookupController fronts the remote collaborators. Every handler goes
// through a cache layer first; the remote call only happens on a miss, on
// the request's own goroutine with the request context.
type LookupController struct {
	logger          providers.Logger
	recommendations services.RecommendationServiceInterface
	search          services.SearchServiceInterface
	images          *cache.ImageCache
	fetcher         clients.ImageFetcherInterface
}

func NewLookupController(logger providers.Logger, recommendations services.RecommendationServiceInterface, search services.SearchServiceInterface, images *cache.ImageCache, fetcher clients.ImageFetcherInterface) *LookupController {
	return &LookupController{
		logger:          logger,
		recommendations: recommendations,
		search:          search,
		images:          images,
		fetcher:         fetcher,
	}
}

func (lc *LookupController) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	mealCategory := query.Get("meal")
	if mealCategory == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	bmi, err := strconv.ParseFloat(query.Get("bmi"), 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	age, err := strconv.Atoi(query.Get("age"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	profile := models.UserProfile{
		BMI:         bmi,
		BMICategory: query.Get("bmi_category"),
		Age:         age,
		Gender:      query.Get("gender"),
	}

	foods, err := lc.recommendations.Recommendations(r.Context(), mealCategory, profile)
	if err != nil {
		lc.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "recommendations lookup failed: %s", err)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

func (lc *LookupController) InvalidateRecommendations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	bmi, err := strconv.ParseFloat(query.Get("bmi"), 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	age, err := strconv.Atoi(query.Get("age"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	lc.recommendations.InvalidateProfile(models.UserProfile{
		BMI:         bmi,
		BMICategory: query.Get("bmi_category"),
		Age:         age,
		Gender:      query.Get("gender"),
	})
	w.WriteHeader(http.StatusNoContent)
}

func (lc *LookupController) SearchFoods(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	raw := query.Get("categories")
	if raw == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	categories := strings.Split(raw, ",")

	maxCalories := 0
	if mc := query.Get("max_calories"); mc != "" {
		parsed, err := strconv.Atoi(mc)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		maxCalories = parsed
	}

	foods, err := lc.search.Search(r.Context(), categories, maxCalories)
	if err != nil {
		lc.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "food search failed: %s", err)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

// GetImage serves a cached decode of the remote image, re-encoded as PNG.
// A fetch or decode failure is reported upstream and never cached.
func (lc *LookupController) GetImage(w http.ResponseWriter, r *http.Request) {
	imageURL := r.URL.Query().Get("url")
	if imageURL == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	img, err := lc.images.FetchOrLoad(r.Context(), imageURL, lc.fetcher.FetchImageBytes)
	if err != nil {
		lc.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "image fetch for %s failed: %s", imageURL, err)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		lc.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "image encode for %s failed: %s", imageURL, err)
	}
}
