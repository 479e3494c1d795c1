package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"timevault/infras/otel"
	"timevault/internal/domains/conversion/model"
	locationService "timevault/internal/domains/location/service"
	zoneModel "timevault/internal/domains/zone/model"
	zoneService "timevault/internal/domains/zone/service"
	"timevault/shared/constant"
	"timevault/shared/failure"
	"timevault/shared/logger"
	"timevault/shared/timezone"

	"github.com/sourcegraph/conc"
)

type Conversion interface {
	Convert(ctx context.Context, in model.ConversionInput) (model.ConversionResult, error)
	ConvertByIdentifier(ctx context.Context, originTime time.Time, originZone, targetZone string) (model.ConversionResult, error)
	ConvertByLocation(ctx context.Context, in model.LocatedConversionInput) (model.LocatedConversionResult, error)
}

type serviceImpl struct {
	zone     zoneService.Zone
	location locationService.Location
	otel     otel.Otel
}

func New(zone zoneService.Zone, location locationService.Location, otel otel.Otel) Conversion {
	return &serviceImpl{
		zone:     zone,
		location: location,
		otel:     otel,
	}
}

// Convert reads the wall clock of in.OriginTime as local time in the origin zone and renders that
// instant in the target zone. Within one zone the origin time comes back untouched. A wall clock
// that does not exist in the origin zone leaves ConvertedTime nil and returns ErrConversionImpossible.
// See timezone.Localize for how repeated wall clocks are settled.
func (s *serviceImpl) Convert(ctx context.Context, in model.ConversionInput) (res model.ConversionResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = model.ConversionResult{
		OriginTime: in.OriginTime,
		OriginZone: in.OriginZone,
		TargetZone: in.TargetZone,
	}

	log := logger.FromContext(ctx).With().
		Str("origin_time", timezone.WallClock(in.OriginTime).Format(time.DateTime)).
		Str("origin_zone", in.OriginZone.ID).
		Str("target_zone", in.TargetZone.ID).
		Logger()

	if in.OriginZone.ID == in.TargetZone.ID {
		converted := in.OriginTime
		res.ConvertedTime = &converted

		log.Debug().Msg("origin and target zone are the same, time kept as is")

		return res, nil
	}

	instant, ok := timezone.Localize(in.OriginTime, in.OriginZone.Location)
	if !ok {
		log.Warn().Msg("origin time falls in a gap of the origin zone")

		return res, failure.Wrap(http.StatusUnprocessableEntity,
			fmt.Errorf("%w: %s in %s", model.ErrConversionImpossible, timezone.WallClock(in.OriginTime).Format(time.DateTime), in.OriginZone.ID))
	}

	converted := instant.In(in.TargetZone.Location)
	res.ConvertedTime = &converted

	log.Debug().Str("converted_time", converted.Format(time.RFC3339)).Msg("time converted")

	return res, nil
}

// ConvertByIdentifier resolves both identifiers, whatever their scheme, and converts.
func (s *serviceImpl) ConvertByIdentifier(ctx context.Context, originTime time.Time, originZone, targetZone string) (res model.ConversionResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConvertByIdentifier")
	defer scope.End()
	defer scope.TraceIfError(err)

	origin, err := s.zone.Resolve(ctx, originZone)
	if err != nil {
		return res, err
	}

	target, err := s.zone.Resolve(ctx, targetZone)
	if err != nil {
		return res, err
	}

	return s.Convert(ctx, model.ConversionInput{
		OriginTime: originTime,
		OriginZone: origin,
		TargetZone: target,
	})
}

// ConvertByLocation resolves both locations concurrently and converts when both have a zone.
// Failures to resolve or convert are reported through the result, not the error; the error is
// reserved for broken zone data.
func (s *serviceImpl) ConvertByLocation(ctx context.Context, in model.LocatedConversionInput) (res model.LocatedConversionResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConvertByLocation")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = model.LocatedConversionResult{
		OriginTime:     in.OriginTime,
		OriginLocation: in.OriginLocation,
		TargetLocation: in.TargetLocation,
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		res.OriginResolution = s.location.Resolve(ctx, in.OriginLocation)
	})
	wg.Go(func() {
		res.TargetResolution = s.location.Resolve(ctx, in.TargetLocation)
	})
	wg.Wait()

	if res.OriginResolution.IsFound() {
		zone, err := s.loadZone(res.OriginResolution.ZoneID)
		if err != nil {
			return res, err
		}

		res.OriginZone = &zone
	}

	if res.TargetResolution.IsFound() {
		zone, err := s.loadZone(res.TargetResolution.ZoneID)
		if err != nil {
			return res, err
		}

		res.TargetZone = &zone
	}

	if res.OriginZone == nil || res.TargetZone == nil {
		logger.FromContext(ctx).Warn().
			Str("origin_location", in.OriginLocation.String()).
			Str("target_location", in.TargetLocation.String()).
			Stringer("outcome", res.Outcome()).
			Msg("conversion not attempted")

		return res, nil
	}

	converted, err := s.Convert(ctx, model.ConversionInput{
		OriginTime: in.OriginTime,
		OriginZone: *res.OriginZone,
		TargetZone: *res.TargetZone,
	})
	if errors.Is(err, model.ErrConversionImpossible) {
		return res, nil
	}

	if err != nil {
		return res, err
	}

	res.ConvertedTime = converted.ConvertedTime

	return res, nil
}

// loadZone loads a zone id handed out by a location resolver. Those are IANA ids already, so
// ids missing from the scheme tables are still accepted.
func (s *serviceImpl) loadZone(id string) (zoneModel.Zone, error) {
	loc, err := timezone.Load(id)
	if err != nil {
		return zoneModel.Zone{}, fmt.Errorf("failed to load resolved zone %s: %w", id, err)
	}

	return zoneModel.Zone{ID: id, Location: loc}, nil
}
