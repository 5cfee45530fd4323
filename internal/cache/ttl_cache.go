package cache

import (
	"ntd/internal/providers"
	"ntd/internal/storage"
	"time"

	json "github.com/goccy/go-json"
)

// Clock abstracts time.Now so expiry boundaries are testable.
type Clock func() time.Time

// entryEnvelope wraps a cached value with its write timestamp. The envelope
// is what round-trips through the durable namespace.
type entryEnvelope[V any] struct {
	Value     V     `json:"value"`
	WrittenAt int64 `json:"written_at"`
}

// TTLCache is an expiring cache over a durable namespace. Values survive
// restarts; expiry is evaluated on read, and stale or corrupt entries behave
// as a miss and are evicted eagerly. The namespace is resolved per call so a
// user-scope switch transparently re-targets the cache partition.
type TTLCache[V any] struct {
	resolve func() *storage.Namespace
	ttl     time.Duration
	name    string
	metrics providers.MetricsProviderInterface
	now     Clock
}

func NewTTLCache[V any](name string, ttl time.Duration, resolve func() *storage.Namespace, metrics providers.MetricsProviderInterface, now Clock) *TTLCache[V] {
	if now == nil {
		now = time.Now
	}
	return &TTLCache[V]{
		resolve: resolve,
		ttl:     ttl,
		name:    name,
		metrics: metrics,
		now:     now,
	}
}

// Put stores the value with a fresh write timestamp, overwriting any prior
// entry under the key.
func (c *TTLCache[V]) Put(key string, value V) error {
	envelope := entryEnvelope[V]{
		Value:     value,
		WrittenAt: c.now().UnixMilli(),
	}
	raw, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	c.resolve().Put(key, string(raw))
	return nil
}

// Get returns the value while the entry is fresh. Absent, corrupt, and
// expired entries all read as a miss; the latter two are deleted so they do
// not linger on disk.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	var zero V
	ns := c.resolve()

	raw, ok := ns.Get(key)
	if !ok {
		c.metrics.IncCacheMiss(c.name)
		return zero, false
	}

	var envelope entryEnvelope[V]
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		ns.Remove(key)
		c.metrics.IncCacheMiss(c.name)
		return zero, false
	}

	age := c.now().Sub(time.UnixMilli(envelope.WrittenAt))
	if age > c.ttl {
		ns.Remove(key)
		c.metrics.IncCacheMiss(c.name)
		return zero, false
	}

	c.metrics.IncCacheHit(c.name)
	return envelope.Value, true
}

func (c *TTLCache[V]) Invalidate(key string) {
	c.resolve().Remove(key)
}

func (c *TTLCache[V]) Clear() error {
	return c.resolve().Clear()
}
