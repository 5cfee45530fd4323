package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"ntd/internal/models"
	"ntd/internal/structures"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// FoodSearchClientInterface looks up candidate food items in the remote food
// database.
type FoodSearchClientInterface interface {
	SearchFoods(ctx context.Context, categories []string, maxCalories int) ([]models.FoodItem, error)
}

type FoodSearchClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewFoodSearchClient(conf *structures.Config) FoodSearchClientInterface {
	return &FoodSearchClient{
		url:    conf.Remote.FoodSearchURL,
		apiKey: conf.Remote.APIKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *FoodSearchClient) SearchFoods(ctx context.Context, categories []string, maxCalories int) ([]models.FoodItem, error) {
	query := url.Values{}
	query.Set("categories", strings.Join(categories, ","))
	if maxCalories > 0 {
		query.Set("max_calories", strconv.Itoa(maxCalories))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build food search request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("food search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("food search service returned %d: %s", resp.StatusCode, raw)
	}

	var items []models.FoodItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode food search response: %w", err)
	}
	return items, nil
}
