package dto

import (
	"net/url"
	"strconv"
	"strings"

	"timevault/internal/domains/location/model"
)

type LocationRequest struct {
	City            string   `json:"city"              validate:"omitempty,max=200"`
	Country         string   `json:"country"           validate:"omitempty,max=100"`
	PostalCode      string   `json:"postal_code"       validate:"omitempty,max=20"`
	StateOrProvince string   `json:"state_or_province" validate:"omitempty,max=100"`
	Latitude        *float64 `json:"latitude"          validate:"required_with=Longitude,omitempty,latitude"`
	Longitude       *float64 `json:"longitude"         validate:"required_with=Latitude,omitempty,longitude"`
}

// FromQuery reads the location from prefixed query keys, e.g. "origin_location.city".
// Unparseable coordinates are left unset.
func (l *LocationRequest) FromQuery(query url.Values, prefix string) {
	key := func(name string) string {
		return prefix + "." + name
	}

	l.City = query.Get(key("city"))
	l.Country = query.Get(key("country"))
	l.PostalCode = query.Get(key("postal_code"))
	l.StateOrProvince = query.Get(key("state_or_province"))
	l.Latitude = parseFloat(query.Get(key("latitude")))
	l.Longitude = parseFloat(query.Get(key("longitude")))
}

func (l *LocationRequest) ToModel() model.Location {
	loc := model.Location{
		City:            strings.TrimSpace(l.City),
		Country:         strings.TrimSpace(l.Country),
		PostalCode:      strings.TrimSpace(l.PostalCode),
		StateOrProvince: strings.TrimSpace(l.StateOrProvince),
	}

	if l.Latitude != nil && l.Longitude != nil {
		loc.Coordinates = model.Coordinates{Latitude: *l.Latitude, Longitude: *l.Longitude, Valid: true}
	}

	return loc
}

func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &v
}

type LocationResponse struct {
	City            string   `json:"city"`
	Country         string   `json:"country"`
	PostalCode      string   `json:"postal_code"`
	StateOrProvince string   `json:"state_or_province"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
}

func (l *LocationResponse) FromModel(loc model.Location) {
	l.City = loc.City
	l.Country = loc.Country
	l.PostalCode = loc.PostalCode
	l.StateOrProvince = loc.StateOrProvince

	if loc.Coordinates.Valid {
		lat, lng := loc.Coordinates.Latitude, loc.Coordinates.Longitude
		l.Latitude = &lat
		l.Longitude = &lng
	}
}

type TimeZoneRequest struct {
	Location LocationRequest `json:"location"`
}

type TimeZoneResponse struct {
	Location          LocationResponse `json:"location"`
	IanaTimeZoneID    *string          `json:"iana_time_zone_id"`
	WindowsTimeZoneID *string          `json:"windows_time_zone_id"`
	RailsTimeZoneIDs  []string         `json:"rails_time_zone_ids"`
}

// IsEmpty reports whether no field of the location is set.
func (l *LocationRequest) IsEmpty() bool {
	return strings.TrimSpace(l.City) == "" &&
		strings.TrimSpace(l.Country) == "" &&
		strings.TrimSpace(l.PostalCode) == "" &&
		strings.TrimSpace(l.StateOrProvince) == "" &&
		(l.Latitude == nil || l.Longitude == nil)
}
