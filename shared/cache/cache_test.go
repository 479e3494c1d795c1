package cache_test

import (
	"context"
	"testing"

	"timevault/config"
	"timevault/infras/otel/mocks"
	"timevault/shared/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedValue struct {
	Status string `json:"status"`
	ZoneID string `json:"zone_id"`
}

func TestMemoryCache_SaveGet(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(mocks.NewOtel())

	require.NoError(t, c.Save(ctx, "location:berlin", cachedValue{Status: "found", ZoneID: "Europe/Berlin"}, 60))

	var got cachedValue
	require.NoError(t, c.Get(ctx, "location:berlin", &got))
	assert.Equal(t, "Europe/Berlin", got.ZoneID)

	require.NoError(t, c.Save(ctx, "raw", "plain string", 0))

	var raw string
	require.NoError(t, c.Get(ctx, "raw", &raw))
	assert.Equal(t, "plain string", raw)
}

func TestMemoryCache_MissIsNil(t *testing.T) {
	c := cache.NewMemoryCache(mocks.NewOtel())

	var got cachedValue
	err := c.Get(context.Background(), "missing", &got)

	require.Error(t, err)
	assert.ErrorIs(t, err, cache.Nil)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(mocks.NewOtel())

	require.NoError(t, c.Save(ctx, "location:a", "1", 0))
	require.NoError(t, c.Save(ctx, "location:b", "2", 0))
	require.NoError(t, c.Save(ctx, "limiter:x", "3", 0))

	require.NoError(t, c.Delete(ctx, "location:a"))

	var v string
	assert.ErrorIs(t, c.Get(ctx, "location:a", &v), cache.Nil)

	require.NoError(t, c.Clear(ctx, "location:"))
	assert.ErrorIs(t, c.Get(ctx, "location:b", &v), cache.Nil)

	require.NoError(t, c.Get(ctx, "limiter:x", &v))
	assert.Equal(t, "3", v)
}

func TestNew_DefaultsToMemory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Driver = "memory"

	c := cache.New(cfg, mocks.NewOtel())

	require.NoError(t, c.Save(context.Background(), "k", "v", 1))
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "location:de|berlin", cache.BuildKey("location", "de|berlin"))
	assert.Equal(t, "limiter:127.0.0.1:curl", cache.BuildKey("limiter", "", "127.0.0.1", "curl"))
	assert.Equal(t, "", cache.BuildKey())
}
