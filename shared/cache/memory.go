package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timevault/infras/otel"

	goCache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 10 * time.Minute

type memoryCache struct {
	store *goCache.Cache
	otel  otel.Otel
}

// NewMemoryCache keeps values JSON-encoded in process memory so both drivers behave the same.
func NewMemoryCache(ot otel.Otel) Cache {
	return &memoryCache{
		store: goCache.New(goCache.NoExpiration, memoryCleanupInterval),
		otel:  ot,
	}
}

// Clear implements Cache.
func (cache *memoryCache) Clear(ctx context.Context, prefix string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, prefix)

	for key := range cache.store.Items() {
		if strings.HasPrefix(key, prefix) {
			cache.store.Delete(key)
		}
	}

	return nil
}

// Delete implements Cache.
func (cache *memoryCache) Delete(ctx context.Context, key string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)
	cache.store.Delete(key)

	return nil
}

// Get implements Cache.
func (cache *memoryCache) Get(ctx context.Context, key string, value any) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, found := cache.store.Get(key)
	if !found {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	str, _ := raw.(string)

	return decode(str, value)
}

// Save implements Cache.
func (cache *memoryCache) Save(ctx context.Context, key string, value any, duration int) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	str, err := encode(value)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	ttl := goCache.NoExpiration
	if duration > 0 {
		ttl = time.Duration(duration) * time.Second
	}

	cache.store.Set(key, str, ttl)

	return nil
}
