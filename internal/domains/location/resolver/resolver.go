package resolver

//go:generate go run go.uber.org/mock/mockgen -source=./resolver.go -destination=./mocks/resolver_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timevault/config"
	"timevault/infras/otel"
	"timevault/internal/domains/location/model"
	"timevault/shared/cache"
	"timevault/shared/constant"
	"timevault/shared/timezone"
)

// Resolver finds the IANA zone for a location. Implementations must be safe for concurrent use
// and report failures through the Resolution status, never by panicking.
type Resolver interface {
	Resolve(ctx context.Context, location model.Location) model.Resolution
}

// New builds the configured driver and wraps it with the timeout and, when enabled, cache decorators.
func New(cfg *config.Config, c cache.Cache, ot otel.Otel) (Resolver, error) {
	var r Resolver

	switch strings.ToLower(cfg.LocationResolver.Driver) {
	case "", constant.ResolverDriverStatic:
		zoneID := strings.TrimSpace(cfg.LocationResolver.StaticZone)
		if zoneID != "" {
			// A zone the database cannot load would fail every located conversion later on.
			if _, err := timezone.Load(zoneID); err != nil {
				return nil, fmt.Errorf("invalid static location resolver zone: %w", err)
			}
		}

		r = NewStatic(zoneID)
	case constant.ResolverDriverGazetteer:
		g, err := NewGazetteer()
		if err != nil {
			return nil, fmt.Errorf("failed to load gazetteer: %w", err)
		}

		r = g
	default:
		return nil, fmt.Errorf("unknown location resolver driver %q", cfg.LocationResolver.Driver)
	}

	timeout := constant.DefaultResolverTimeout
	if cfg.LocationResolver.TimeoutMS > 0 {
		timeout = time.Duration(cfg.LocationResolver.TimeoutMS) * time.Millisecond
	}

	r = NewTimeout(r, timeout)

	if cfg.LocationResolver.Cache {
		ttl := cfg.Cache.TTL
		if ttl <= 0 {
			ttl = constant.DefaultCacheTTLSeconds
		}

		r = NewCached(r, c, ttl, ot)
	}

	return r, nil
}
