//go:build wireinject
// +build wireinject

package di

import (
	"timevault/config"
	"timevault/infras/otel"
	conversionService "timevault/internal/domains/conversion/service"
	"timevault/internal/domains/location/resolver"
	locationService "timevault/internal/domains/location/service"
	zoneRepository "timevault/internal/domains/zone/repository"
	zoneService "timevault/internal/domains/zone/service"
	conversionHandler "timevault/internal/handlers/conversion"
	healthHandler "timevault/internal/handlers/health"
	zoneHandler "timevault/internal/handlers/zone"
	"timevault/shared/cache"
	"timevault/shared/lifecycle"
	"timevault/transport/http"
	"timevault/transport/http/middleware"
	"timevault/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
	lifecycle.New,
)

var zoneDomain = wire.NewSet(
	zoneRepository.New,
	zoneService.New,
)

var locationDomain = wire.NewSet(
	resolver.New,
	locationService.New,
)

var conversionDomain = wire.NewSet(
	conversionService.New,
)

var domains = wire.NewSet(
	zoneDomain,
	locationDomain,
	conversionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	conversionHandler.New,
	zoneHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
