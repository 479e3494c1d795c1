package model

import (
	"errors"
	"time"

	locationModel "timevault/internal/domains/location/model"
	zoneModel "timevault/internal/domains/zone/model"
)

var ErrConversionImpossible = errors.New("origin time does not exist in origin time zone")

// ConversionInput carries a naive origin time: only its calendar and clock fields are read.
type ConversionInput struct {
	OriginTime time.Time
	OriginZone zoneModel.Zone
	TargetZone zoneModel.Zone
}

// ConversionResult.ConvertedTime is nil when the origin time does not exist in the origin zone.
type ConversionResult struct {
	OriginTime    time.Time
	OriginZone    zoneModel.Zone
	TargetZone    zoneModel.Zone
	ConvertedTime *time.Time
}

type LocatedConversionInput struct {
	OriginTime     time.Time
	OriginLocation locationModel.Location
	TargetLocation locationModel.Location
}

// LocatedConversionResult records each step that can fail on its own: resolving the origin,
// resolving the target and converting. Zones are nil when their location did not resolve.
type LocatedConversionResult struct {
	OriginTime       time.Time
	OriginLocation   locationModel.Location
	TargetLocation   locationModel.Location
	OriginResolution locationModel.Resolution
	TargetResolution locationModel.Resolution
	OriginZone       *zoneModel.Zone
	TargetZone       *zoneModel.Zone
	ConvertedTime    *time.Time
}

type Outcome int

const (
	OutcomeConverted Outcome = iota
	OutcomeOriginZoneNotFound
	OutcomeTargetZoneNotFound
	OutcomeBothZonesNotFound
	OutcomeConversionImpossible
	OutcomeResolutionUnavailable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConverted:
		return "converted"
	case OutcomeOriginZoneNotFound:
		return "origin_zone_not_found"
	case OutcomeTargetZoneNotFound:
		return "target_zone_not_found"
	case OutcomeBothZonesNotFound:
		return "both_zones_not_found"
	case OutcomeConversionImpossible:
		return "conversion_impossible"
	case OutcomeResolutionUnavailable:
		return "resolution_unavailable"
	default:
		return "unknown"
	}
}

// Outcome names what happened. An unavailable resolver outranks a location that was not found,
// since retrying may still succeed.
func (r LocatedConversionResult) Outcome() Outcome {
	if r.OriginResolution.Status == locationModel.StatusUnavailable ||
		r.TargetResolution.Status == locationModel.StatusUnavailable {
		return OutcomeResolutionUnavailable
	}

	switch {
	case r.OriginZone == nil && r.TargetZone == nil:
		return OutcomeBothZonesNotFound
	case r.OriginZone == nil:
		return OutcomeOriginZoneNotFound
	case r.TargetZone == nil:
		return OutcomeTargetZoneNotFound
	case r.ConvertedTime == nil:
		return OutcomeConversionImpossible
	default:
		return OutcomeConverted
	}
}
