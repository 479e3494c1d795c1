package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"strings"

	"timevault/config"
	"timevault/infras/otel"
	"timevault/infras/redis"
	"timevault/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	keySeparator          = ":"
)

// Nil is returned (wrapped) by every driver when a key is absent.
var Nil = goRedis.Nil

type Cache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

// New picks the cache driver from configuration. A Redis that cannot be reached
// degrades to the in-memory driver so lookups keep working.
func New(cfg *config.Config, ot otel.Otel) Cache {
	if strings.EqualFold(cfg.Cache.Driver, constant.CacheDriverRedis) {
		client, err := redis.New(cfg)
		if err == nil {
			return NewRedisCache(client, ot)
		}

		log.Error().Err(err).Msg("Redis cache unavailable, falling back to in-memory cache")
	}

	log.Info().Msg("Using in-memory cache")

	return NewMemoryCache(ot)
}

// BuildKey joins non-empty parts with ':'.
func BuildKey(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, keySeparator)
}
