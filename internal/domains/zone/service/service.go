package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"timevault/infras/otel"
	"timevault/internal/domains/zone/model"
	"timevault/internal/domains/zone/model/dto"
	"timevault/internal/domains/zone/repository"
	"timevault/shared/constant"
	"timevault/shared/failure"
	"timevault/shared/logger"
	"timevault/shared/timezone"
)

type Zone interface {
	Classify(identifier string) model.Scheme
	Expand(identifier string) model.Identifiers
	Canonical(identifier string) (string, bool)
	Resolve(ctx context.Context, identifier string) (model.Zone, error)
	Describe(ctx context.Context, identifier string) (dto.ZoneResponse, error)
}

type serviceImpl struct {
	repo repository.Zone
	otel otel.Otel
}

func New(repo repository.Zone, otel otel.Otel) Zone {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Resolve turns an identifier in any scheme into zone rules.
func (s *serviceImpl) Resolve(ctx context.Context, identifier string) (res model.Zone, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveZone")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, ok := s.Canonical(identifier)
	if !ok {
		logger.FromContext(ctx).Warn().Str("identifier", identifier).Msg("unrecognized time zone identifier")

		return res, failure.Wrap(http.StatusBadRequest, fmt.Errorf("%w: %q", model.ErrZoneUnrecognized, identifier))
	}

	loc, err := timezone.Load(id)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("identifier", identifier).Str("zone", id).Msg("failed to load mapped time zone")

		return res, fmt.Errorf("failed to load zone %s: %w", id, err)
	}

	scope.SetAttribute("zone.id", id)

	return model.Zone{ID: id, Location: loc}, nil
}

// Describe classifies and expands identifier and reports the zone's offset right now.
func (s *serviceImpl) Describe(ctx context.Context, identifier string) (res dto.ZoneResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Describe")
	defer scope.End()
	defer scope.TraceIfError(err)

	zone, err := s.Resolve(ctx, identifier)
	if err != nil {
		return res, err
	}

	res.FromIdentifiers(identifier, s.Classify(identifier), s.Expand(identifier))

	now := time.Now().In(zone.Location)
	res.Abbreviation, _ = now.Zone()
	res.UTCOffset = now.Format("-07:00")
	res.IsDST = now.IsDST()

	return res, nil
}
