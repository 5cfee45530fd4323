package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"ntd/internal/models"
	"ntd/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/goccy/go-json"
)

func remoteConf(recommendationURL, foodSearchURL, apiKey string) *structures.Config {
	conf := &structures.Config{}
	conf.Remote.RecommendationURL = recommendationURL
	conf.Remote.FoodSearchURL = foodSearchURL
	conf.Remote.APIKey = apiKey
	return conf
}

func TestRecommendationClient_Fetch(t *testing.T) {
	var gotAuth, gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotAuth = r.Header.Get("Authorization")

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		gotPrompt = payload["prompt"]

		_ = json.NewEncoder(w).Encode(models.RecommendationSet{
			Lunch: []models.RecommendedFood{{Name: "Chicken Adobo", Calories: 320}},
		})
	}))
	defer server.Close()

	client := NewRecommendationClient(remoteConf(server.URL, "", "secret"))
	set, err := client.FetchRecommendations(context.Background(), "lunch ideas")
	require.NoError(t, err)

	require.Len(t, set.Lunch, 1)
	assert.Equal(t, "Chicken Adobo", set.Lunch[0].Name)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "lunch ideas", gotPrompt)
}

func TestRecommendationClient_NoAuthHeaderWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(models.RecommendationSet{})
	}))
	defer server.Close()

	client := NewRecommendationClient(remoteConf(server.URL, "", ""))
	_, err := client.FetchRecommendations(context.Background(), "prompt")
	require.NoError(t, err)
}

func TestRecommendationClient_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewRecommendationClient(remoteConf(server.URL, "", ""))
	_, err := client.FetchRecommendations(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestRecommendationClient_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{broken"))
	}))
	defer server.Close()

	client := NewRecommendationClient(remoteConf(server.URL, "", ""))
	_, err := client.FetchRecommendations(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestFoodSearchClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "protein,rice", r.URL.Query().Get("categories"))
		assert.Equal(t, "500", r.URL.Query().Get("max_calories"))
		_ = json.NewEncoder(w).Encode([]models.FoodItem{{Name: "Adobo", Calories: 300}})
	}))
	defer server.Close()

	client := NewFoodSearchClient(remoteConf("", server.URL, ""))
	items, err := client.SearchFoods(context.Background(), []string{"protein", "rice"}, 500)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Adobo", items[0].Name)
}

func TestFoodSearchClient_OmitsZeroCeiling(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("max_calories"))
		_ = json.NewEncoder(w).Encode([]models.FoodItem{})
	}))
	defer server.Close()

	client := NewFoodSearchClient(remoteConf("", server.URL, ""))
	_, err := client.SearchFoods(context.Background(), []string{"protein"}, 0)
	require.NoError(t, err)
}

func TestFoodSearchClient_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewFoodSearchClient(remoteConf("", server.URL, ""))
	_, err := client.SearchFoods(context.Background(), []string{"protein"}, 0)
	assert.Error(t, err)
}

func TestImageFetcher_Fetch(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G'}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	fetcher := NewImageFetcher()
	raw, err := fetcher.FetchImageBytes(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, payload, raw)
}

func TestImageFetcher_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewImageFetcher()
	_, err := fetcher.FetchImageBytes(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestImageFetcher_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := NewImageFetcher()
	_, err := fetcher.FetchImageBytes(ctx, server.URL)
	assert.Error(t, err)
}
