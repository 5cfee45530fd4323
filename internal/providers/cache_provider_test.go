package providers_test

import (
	"ntd/internal/providers"
	"ntd/internal/structures"
	"ntd/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cacheConf(enabled bool, sizeMB, ttl int) *structures.Config {
	conf := &structures.Config{}
	conf.ResponseCache.Enabled = enabled
	conf.ResponseCache.Size = sizeMB
	conf.ResponseCache.TTL = ttl
	return conf
}

func TestCacheProvider_SetGetDel(t *testing.T) {
	cache := providers.NewCacheProvider(cacheConf(true, 1, 60), &testutil.MockLogger{})

	cache.Set("meals:default", []byte(`{"lunch":{}}`))
	val, ok := cache.Get("meals:default")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"lunch":{}}`), val)

	cache.Del("meals:default")
	_, ok = cache.Get("meals:default")
	assert.False(t, ok)
}

func TestCacheProvider_MissingKey(t *testing.T) {
	cache := providers.NewCacheProvider(cacheConf(true, 1, 60), &testutil.MockLogger{})

	_, ok := cache.Get("nothing")
	assert.False(t, ok)
}

func TestCacheProvider_ClearDropsEverything(t *testing.T) {
	cache := providers.NewCacheProvider(cacheConf(true, 1, 60), &testutil.MockLogger{})

	cache.Set("meals:default", []byte(`{}`))
	cache.Set("dashboard", []byte(`{}`))
	cache.Clear()

	_, ok := cache.Get("meals:default")
	assert.False(t, ok)
	_, ok = cache.Get("dashboard")
	assert.False(t, ok)
}

func TestCacheProvider_DisabledIsNoop(t *testing.T) {
	cache := providers.NewCacheProvider(cacheConf(false, 1, 60), &testutil.MockLogger{})

	cache.Set("key", []byte("value"))
	cache.Clear()
	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestCacheProvider_ZeroSizeIsNoop(t *testing.T) {
	cache := providers.NewCacheProvider(cacheConf(true, 0, 60), &testutil.MockLogger{})

	cache.Set("key", []byte("value"))
	_, ok := cache.Get("key")
	assert.False(t, ok)
}
