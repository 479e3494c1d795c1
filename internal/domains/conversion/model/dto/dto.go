package dto

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"timevault/internal/domains/conversion/model"
	locationDto "timevault/internal/domains/location/model/dto"
	zoneModel "timevault/internal/domains/zone/model"
	"timevault/shared/constant"
	"timevault/shared/failure"
	"timevault/shared/timezone"
)

const (
	queryOriginLocation = "origin_location"
	queryTargetLocation = "target_location"
	offsetSuffix        = "Z07:00"
)

// TimeLayouts are Go reference layouts. Empty layouts fall back to constant.DefaultTimeLayout.
type TimeLayouts struct {
	OriginTimeFormat         string `json:"origin_time_format"          validate:"timelayout"`
	OriginResponseTimeFormat string `json:"origin_response_time_format" validate:"timelayout"`
	ConvertedTimeFormat      string `json:"converted_time_format"       validate:"timelayout"`
}

func (l *TimeLayouts) SetDefaults() {
	if strings.TrimSpace(l.OriginTimeFormat) == "" {
		l.OriginTimeFormat = constant.DefaultTimeLayout
	}

	if strings.TrimSpace(l.OriginResponseTimeFormat) == "" {
		l.OriginResponseTimeFormat = constant.DefaultTimeLayout
	}

	if strings.TrimSpace(l.ConvertedTimeFormat) == "" {
		l.ConvertedTimeFormat = constant.DefaultTimeLayout
	}
}

func (l *TimeLayouts) fromQuery(query url.Values) {
	l.OriginTimeFormat = query.Get("origin_time_format")
	l.OriginResponseTimeFormat = query.Get("origin_response_time_format")
	l.ConvertedTimeFormat = query.Get("converted_time_format")
}

// ParseOriginTime reads value with the origin layout. A trailing zone offset in the layout is
// optional in the value; either way only the wall clock is kept.
func (l *TimeLayouts) ParseOriginTime(value string) (time.Time, error) {
	t, err := time.Parse(l.OriginTimeFormat, value)
	if err == nil {
		return timezone.WallClock(t), nil
	}

	if strings.HasSuffix(l.OriginTimeFormat, offsetSuffix) {
		if t, retryErr := time.Parse(strings.TrimSuffix(l.OriginTimeFormat, offsetSuffix), value); retryErr == nil {
			return timezone.WallClock(t), nil
		}
	}

	return time.Time{}, failure.BadRequest(fmt.Errorf("origin_time %q does not match origin_time_format %q", value, l.OriginTimeFormat))
}

type TimeConversionRequest struct {
	OriginTime     string `json:"origin_time"      validate:"notblank"`
	OriginTimeZone string `json:"origin_time_zone" validate:"notblank"`
	TargetTimeZone string `json:"target_time_zone" validate:"notblank"`
	TimeLayouts
}

func (r *TimeConversionRequest) FromQuery(query url.Values) {
	r.OriginTime = query.Get("origin_time")
	r.OriginTimeZone = query.Get("origin_time_zone")
	r.TargetTimeZone = query.Get("target_time_zone")
	r.fromQuery(query)
}

type TimeConversionResponse struct {
	ConvertedTime       string `json:"converted_time"`
	ConvertedTimeFormat string `json:"converted_time_format"`
	OriginTime          string `json:"origin_time"`
	OriginTimeFormat    string `json:"origin_time_format"`
	OriginTimeZone      string `json:"origin_time_zone"`
	TargetTimeZone      string `json:"target_time_zone"`
}

func (r *TimeConversionResponse) FromResult(res model.ConversionResult, layouts TimeLayouts) {
	r.OriginTime = renderWallClock(res.OriginTime, res.OriginZone, layouts.OriginResponseTimeFormat)
	r.OriginTimeFormat = layouts.OriginResponseTimeFormat
	r.OriginTimeZone = res.OriginZone.ID
	r.TargetTimeZone = res.TargetZone.ID
	r.ConvertedTimeFormat = layouts.ConvertedTimeFormat

	if res.ConvertedTime == nil {
		return
	}

	if res.OriginZone.ID == res.TargetZone.ID {
		r.ConvertedTime = renderWallClock(*res.ConvertedTime, res.TargetZone, layouts.ConvertedTimeFormat)

		return
	}

	r.ConvertedTime = res.ConvertedTime.Format(layouts.ConvertedTimeFormat)
}

type LocatedTimeConversionRequest struct {
	OriginTime     string                      `json:"origin_time"     validate:"notblank"`
	OriginLocation locationDto.LocationRequest `json:"origin_location"`
	TargetLocation locationDto.LocationRequest `json:"target_location"`
	TimeLayouts
}

func (r *LocatedTimeConversionRequest) FromQuery(query url.Values) {
	r.OriginTime = query.Get("origin_time")
	r.OriginLocation.FromQuery(query, queryOriginLocation)
	r.TargetLocation.FromQuery(query, queryTargetLocation)
	r.fromQuery(query)
}

// Validate covers what the field tags cannot: a location must say something about the place.
func (r *LocatedTimeConversionRequest) Validate() error {
	if r.OriginLocation.IsEmpty() {
		return failure.BadRequestFromString("origin_location must have at least one field set")
	}

	if r.TargetLocation.IsEmpty() {
		return failure.BadRequestFromString("target_location must have at least one field set")
	}

	return nil
}

type LocatedTimeConversionResponse struct {
	TimeConversionResponse
	OriginLocation locationDto.LocationResponse `json:"origin_location"`
	TargetLocation locationDto.LocationResponse `json:"target_location"`
}

func (r *LocatedTimeConversionResponse) FromResult(res model.LocatedConversionResult, layouts TimeLayouts) {
	var origin, target zoneModel.Zone
	if res.OriginZone != nil {
		origin = *res.OriginZone
	}

	if res.TargetZone != nil {
		target = *res.TargetZone
	}

	r.TimeConversionResponse.FromResult(model.ConversionResult{
		OriginTime:    res.OriginTime,
		OriginZone:    origin,
		TargetZone:    target,
		ConvertedTime: res.ConvertedTime,
	}, layouts)

	r.OriginLocation.FromModel(res.OriginLocation)
	r.TargetLocation.FromModel(res.TargetLocation)
}

// renderWallClock formats a naive time as local time in zone, offset included.
// A wall clock the zone skips is rendered without a zone.
func renderWallClock(t time.Time, zone zoneModel.Zone, layout string) string {
	if zone.Location != nil {
		if local, ok := timezone.Localize(t, zone.Location); ok {
			return local.Format(layout)
		}
	}

	return timezone.WallClock(t).Format(layout)
}
