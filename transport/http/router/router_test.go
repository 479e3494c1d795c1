package router_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"timevault/config"
	otelMocks "timevault/infras/otel/mocks"
	conversionService "timevault/internal/domains/conversion/service"
	"timevault/internal/domains/location/resolver"
	locationService "timevault/internal/domains/location/service"
	zoneRepository "timevault/internal/domains/zone/repository"
	zoneService "timevault/internal/domains/zone/service"
	"timevault/internal/handlers/conversion"
	"timevault/internal/handlers/health"
	"timevault/internal/handlers/zone"
	"timevault/shared/cache"
	"timevault/shared/constant"
	"timevault/shared/lifecycle"
	"timevault/transport/http/middleware"
	"timevault/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T, env string, state *lifecycle.State) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = env
	cfg.LocationResolver.Driver = constant.ResolverDriverStatic
	cfg.LocationResolver.StaticZone = "Europe/Paris"

	ot := otelMocks.NewOtel()
	c := cache.NewMemoryCache(ot)

	repo, err := zoneRepository.New()
	require.NoError(t, err)

	res, err := resolver.New(cfg, c, ot)
	require.NoError(t, err)

	zones := zoneService.New(repo, ot)
	locations := locationService.New(res, zones, ot)

	r := router.New(router.DomainHandlers{
		Health:     health.New(state, cfg),
		Conversion: conversion.New(conversionService.New(zones, locations, ot), ot),
		Zone:       zone.New(locations, zones, ot),
	}, middleware.NewAppMiddleware(ot, cfg, c, state), cfg)

	return r.Handler()
}

func get(handler http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func TestRoutes(t *testing.T) {
	state := lifecycle.New()
	state.Set(lifecycle.ServerStateReady)

	handler := newHandler(t, constant.ServerEnvDevelopment, state)

	located := url.Values{
		"origin_time":          {"2024-01-15T12:00:00.000"},
		"origin_location.city": {"Paris"},
		"target_location.city": {"Lyon"},
	}

	tests := []struct {
		name     string
		target   string
		wantCode int
	}{
		{name: "health", target: "/health", wantCode: http.StatusOK},
		{name: "identifier", target: "/v1/timezone/identifiers/UTC", wantCode: http.StatusOK},
		{name: "timezone lookup", target: "/v1/timezone?location.city=Paris", wantCode: http.StatusOK},
		{name: "located conversion", target: "/v1/time/conversion/location?" + located.Encode(), wantCode: http.StatusOK},
		{name: "swagger outside production", target: "/swagger/doc.json", wantCode: http.StatusOK},
		{name: "unknown route", target: "/v2/anything", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(handler, tt.target)

			assert.Equal(t, tt.wantCode, recorder.Code, recorder.Body.String())
			assert.NotEmpty(t, recorder.Header().Get(constant.RequestHeaderRequestID))
		})
	}
}

func TestRoutes_Production(t *testing.T) {
	state := lifecycle.New()
	state.Set(lifecycle.ServerStateReady)

	handler := newHandler(t, constant.ServerEnvProduction, state)

	assert.Equal(t, http.StatusNotFound, get(handler, "/swagger/doc.json").Code)
}

func TestRoutes_Draining(t *testing.T) {
	state := lifecycle.New()
	state.Set(lifecycle.ServerStateInGracePeriod)

	handler := newHandler(t, constant.ServerEnvDevelopment, state)

	assert.Equal(t, http.StatusServiceUnavailable, get(handler, "/v1/timezone/identifiers/UTC").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(handler, "/health").Code)
}
