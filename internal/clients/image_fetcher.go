package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxImageBytes = 8 << 20 // 8 MB

// ImageFetcherInterface downloads raw image bytes from a URL.
type ImageFetcherInterface interface {
	FetchImageBytes(ctx context.Context, url string) ([]byte, error)
}

type ImageFetcher struct {
	httpClient *http.Client
}

func NewImageFetcher() ImageFetcherInterface {
	return &ImageFetcher{
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

func (f *ImageFetcher) FetchImageBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch returned %d for %s", resp.StatusCode, url)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	return raw, nil
}
