package service

import (
	"context"
	"fmt"
	"net/http"

	"timevault/infras/otel"
	"timevault/internal/domains/location/model"
	"timevault/internal/domains/location/model/dto"
	"timevault/internal/domains/location/resolver"
	zoneService "timevault/internal/domains/zone/service"
	"timevault/shared/constant"
	"timevault/shared/failure"
	"timevault/shared/logger"
)

type Location interface {
	Resolve(ctx context.Context, location model.Location) model.Resolution
	Lookup(ctx context.Context, location model.Location) (dto.TimeZoneResponse, error)
}

type serviceImpl struct {
	resolver resolver.Resolver
	zone     zoneService.Zone
	otel     otel.Otel
}

func New(resolver resolver.Resolver, zone zoneService.Zone, otel otel.Otel) Location {
	return &serviceImpl{
		resolver: resolver,
		zone:     zone,
		otel:     otel,
	}
}

// Resolve finds the zone of a location. Zone ids coming back from the resolver are canonicalized.
func (s *serviceImpl) Resolve(ctx context.Context, location model.Location) model.Resolution {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveLocation")
	defer scope.End()

	res := s.resolver.Resolve(ctx, location)

	scope.SetAttributes(map[string]any{
		"location":            location.String(),
		"location.resolution": res.Status.String(),
	})

	switch res.Status {
	case model.StatusFound:
		if id, ok := s.zone.Canonical(res.ZoneID); ok {
			res.ZoneID = id
		}

		logger.FromContext(ctx).Debug().Str("location", location.String()).Str("zone", res.ZoneID).Msg("location resolved")
	case model.StatusNotFound:
		logger.FromContext(ctx).Warn().Str("location", location.String()).Msg("no time zone found for location")
	case model.StatusUnavailable:
		logger.FromContext(ctx).Error().Str("location", location.String()).Msg("location resolution unavailable")
	}

	return res
}

// Lookup resolves a location and lists its zone under every naming scheme.
func (s *serviceImpl) Lookup(ctx context.Context, location model.Location) (res dto.TimeZoneResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Lookup")
	defer scope.End()
	defer scope.TraceIfError(err)

	resolution := s.Resolve(ctx, location)

	switch resolution.Status {
	case model.StatusNotFound:
		return res, failure.Wrap(http.StatusNotFound, fmt.Errorf("%w: %s", model.ErrLocationNotFound, location))
	case model.StatusUnavailable:
		return res, failure.Wrap(http.StatusServiceUnavailable, model.ErrResolutionUnavailable)
	}

	ids := s.zone.Expand(resolution.ZoneID)
	if ids.Iana == nil {
		ids.Iana = &resolution.ZoneID
	}

	res.Location.FromModel(location)
	res.IanaTimeZoneID = ids.Iana
	res.WindowsTimeZoneID = ids.Windows
	res.RailsTimeZoneIDs = ids.Rails

	if res.RailsTimeZoneIDs == nil {
		res.RailsTimeZoneIDs = []string{}
	}

	return res, nil
}
