package providers

import (
	"ntd/internal/structures"
	"unsafe"

	"github.com/coocood/freecache"
)

type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Del(key string)
	Clear()
}

// CacheProvider is a short-lived in-memory cache for rendered API responses.
// It sits in front of the durable stores so repeated reads of the same
// ledger/registry do not re-serialize on every request.
type CacheProvider struct {
	cache *freecache.Cache
	ttl   int
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.ResponseCache.Enabled || conf.ResponseCache.Size <= 0 {
		logger.Infof(TypeApp, "Response cache disabled")
		return &noopCache{}
	}

	sizeBytes := conf.ResponseCache.Size * 1024 * 1024
	ttl := max(conf.ResponseCache.TTL, 1)

	logger.Infof(TypeApp, "Response cache initialized: %dMB, TTL=%ds", conf.ResponseCache.Size, ttl)

	return &CacheProvider{
		cache: freecache.NewCache(sizeBytes),
		ttl:   ttl,
	}
}

// unsafeStringToBytes converts string to []byte without allocation.
// Safe when the result is only read (not modified), which is the case
// for freecache, which copies keys internally.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(unsafeStringToBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *CacheProvider) Set(key string, value []byte) {
	_ = c.cache.Set(unsafeStringToBytes(key), value, c.ttl)
}

func (c *CacheProvider) Del(key string) {
	c.cache.Del(unsafeStringToBytes(key))
}

// Clear drops every cached response. Used when the underlying stores change
// wholesale, as on the daily rollover.
func (c *CacheProvider) Clear() {
	c.cache.Clear()
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
func (n *noopCache) Del(_ string)                {}
func (n *noopCache) Clear()                      {}
