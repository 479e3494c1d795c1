package resolver

import (
	"context"
	"errors"

	"timevault/infras/otel"
	"timevault/internal/domains/location/model"
	"timevault/shared/cache"
	"timevault/shared/constant"
	"timevault/shared/logger"
)

const cacheResolveLocation = "location:resolve"

type cached struct {
	next  Resolver
	cache cache.Cache
	ttl   int
	otel  otel.Otel
}

// NewCached remembers Found and NotFound results of next for ttl seconds.
// Unavailable is never stored, and a failing cache only costs a call to next.
func NewCached(next Resolver, c cache.Cache, ttl int, ot otel.Otel) Resolver {
	return &cached{next: next, cache: c, ttl: ttl, otel: ot}
}

func (c *cached) Resolve(ctx context.Context, location model.Location) model.Resolution {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelResolverScopeName, constant.OtelResolverScopeName+".Cached")
	defer scope.End()

	cacheKey := cache.BuildKey(cacheResolveLocation, location.Key())

	var res model.Resolution

	err := c.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		logger.FromContext(ctx).Debug().Str("cacheKey", cacheKey).Msg("cache hit for location")
		scope.SetAttribute("cache.hit", true)

		return res
	}

	if !errors.Is(err, cache.Nil) {
		logger.FromContext(ctx).Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to read location from cache")
	}

	res = c.next.Resolve(ctx, location)
	if res.Status == model.StatusUnavailable {
		return res
	}

	if err := c.cache.Save(ctx, cacheKey, res, c.ttl); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save location to cache")
	}

	return res
}
