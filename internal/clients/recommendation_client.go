package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"ntd/internal/models"
	"ntd/internal/structures"
	"time"

	json "github.com/goccy/go-json"
)

// RecommendationClientInterface is the AI recommendation collaborator. The
// transport owns timeouts; this client never retries and never caches.
type RecommendationClientInterface interface {
	FetchRecommendations(ctx context.Context, prompt string) (*models.RecommendationSet, error)
}

type RecommendationClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

type recommendationRequest struct {
	Prompt string `json:"prompt"`
}

func NewRecommendationClient(conf *structures.Config) RecommendationClientInterface {
	return &RecommendationClient{
		url:    conf.Remote.RecommendationURL,
		apiKey: conf.Remote.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *RecommendationClient) FetchRecommendations(ctx context.Context, prompt string) (*models.RecommendationSet, error) {
	body, err := json.Marshal(recommendationRequest{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build recommendation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("recommendation service returned %d: %s", resp.StatusCode, raw)
	}

	var set models.RecommendationSet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("decode recommendation response: %w", err)
	}
	return &set, nil
}
