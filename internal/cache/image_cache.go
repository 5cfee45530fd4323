package cache

import (
	"bytes"
	"container/list"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"ntd/internal/providers"
	"ntd/internal/structures"
	"sync"

	"golang.org/x/sync/singleflight"
)

// RemoteFetcher retrieves raw image bytes for a key (usually a URL).
type RemoteFetcher func(ctx context.Context, key string) ([]byte, error)

// ImageCache is a count-bounded LRU of decoded images. Insertion beyond
// capacity evicts exactly the least-recently-used entry; a successful Get
// promotes the entry to most-recently-used. One instance is shared process
// wide, so all mutation happens under the mutex.
type ImageCache struct {
	mu        sync.Mutex
	capacity  int
	evictList *list.List
	items     map[string]*list.Element
	group     singleflight.Group
	metrics   providers.MetricsProviderInterface
	logger    providers.Logger
}

type imageEntry struct {
	key string
	img image.Image
}

func NewImageCache(conf *structures.Config, metrics providers.MetricsProviderInterface, logger providers.Logger) *ImageCache {
	return &ImageCache{
		capacity:  conf.Caches.ImageCapacity,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
		metrics:   metrics,
		logger:    logger,
	}
}

func (c *ImageCache) Get(key string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.metrics.IncCacheMiss("image")
		return nil, false
	}
	c.evictList.MoveToFront(elem)
	c.metrics.IncCacheHit("image")
	return elem.Value.(*imageEntry).img, true
}

func (c *ImageCache) Put(key string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.evictList.MoveToFront(elem)
		elem.Value.(*imageEntry).img = img
		return
	}

	c.items[key] = c.evictList.PushFront(&imageEntry{key: key, img: img})
	if c.evictList.Len() > c.capacity {
		c.evictOldest()
	}
}

// evictOldest removes the tail of the recency list. Caller holds c.mu.
func (c *ImageCache) evictOldest() {
	elem := c.evictList.Back()
	if elem == nil {
		return
	}
	entry := c.evictList.Remove(elem).(*imageEntry)
	delete(c.items, entry.key)
	c.metrics.IncImageEvictions()
	c.logger.Debugf(providers.TypeApp, "Image cache evicted %s (%d/%d)", entry.key, len(c.items), c.capacity)
}

// FetchOrLoad returns the cached image or fetches, decodes and caches it.
// Concurrent calls for the same key collapse into a single fetch. Fetch and
// decode failures are returned to the caller and never cached.
func (c *ImageCache) FetchOrLoad(ctx context.Context, key string, fetcher RemoteFetcher) (image.Image, error) {
	if img, ok := c.Get(key); ok {
		return img, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A concurrent loader may have filled the entry while we queued.
		if img, ok := c.Get(key); ok {
			return img, nil
		}

		raw, err := fetcher(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("fetch image %s: %w", key, err)
		}

		img, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode image %s: %w", key, err)
		}

		c.Put(key, img)
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(image.Image), nil
}

func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

func (c *ImageCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictList.Init()
	c.items = make(map[string]*list.Element)
}
