package testutil

import (
	"context"
	"ntd/internal/models"
	"ntd/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// LogCount returns how many entries of the given level were recorded.
func (m *MockLogger) LogCount(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

func (m *MockCache) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
}

func (m *MockCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Data)
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu             sync.Mutex
	Requests       int
	CacheHits      map[string]int
	CacheMisses    map[string]int
	ImageEvictions int
	RemoteErrors   map[string]int
	DailyResets    int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		CacheHits:    make(map[string]int),
		CacheMisses:  make(map[string]int),
		RemoteErrors: make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(endpoint string, duration time.Duration) {}

func (m *MockMetrics) IncCacheHit(cache string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits[cache]++
}

func (m *MockMetrics) IncCacheMiss(cache string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses[cache]++
}

func (m *MockMetrics) IncImageEvictions() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ImageEvictions++
}

func (m *MockMetrics) IncRemoteErrors(collaborator string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoteErrors[collaborator]++
}

func (m *MockMetrics) IncDailyResets() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DailyResets++
}

// MockRecommendationClient implements clients.RecommendationClientInterface.
type MockRecommendationClient struct {
	mu      sync.Mutex
	Calls   int
	FetchFn func(ctx context.Context, prompt string) (*models.RecommendationSet, error)
}

func (m *MockRecommendationClient) FetchRecommendations(ctx context.Context, prompt string) (*models.RecommendationSet, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	return m.FetchFn(ctx, prompt)
}

func (m *MockRecommendationClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// MockFoodSearchClient implements clients.FoodSearchClientInterface.
type MockFoodSearchClient struct {
	mu       sync.Mutex
	Calls    int
	SearchFn func(ctx context.Context, categories []string, maxCalories int) ([]models.FoodItem, error)
}

func (m *MockFoodSearchClient) SearchFoods(ctx context.Context, categories []string, maxCalories int) ([]models.FoodItem, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	return m.SearchFn(ctx, categories, maxCalories)
}

func (m *MockFoodSearchClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// MockImageFetcher implements clients.ImageFetcherInterface.
type MockImageFetcher struct {
	mu      sync.Mutex
	Calls   int
	FetchFn func(ctx context.Context, url string) ([]byte, error)
}

func (m *MockImageFetcher) FetchImageBytes(ctx context.Context, url string) ([]byte, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	return m.FetchFn(ctx, url)
}

func (m *MockImageFetcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}
