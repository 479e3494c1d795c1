package model

import (
	"errors"
	"strconv"
	"strings"
)

const EntityName = "location"

var ErrLocationNotFound = errors.New("no time zone found for location")

var ErrResolutionUnavailable = errors.New("location resolution unavailable")

// Location is a structured place description. All fields are optional.
// Two locations are equal when every field is equal.
type Location struct {
	City            string
	Country         string
	PostalCode      string
	StateOrProvince string
	Coordinates     Coordinates
}

// Coordinates is an optional WGS84 point. Valid is false when the caller sent none.
type Coordinates struct {
	Latitude  float64
	Longitude float64
	Valid     bool
}

// String renders the location as "city, state, postal code, country", skipping empty parts.
func (l Location) String() string {
	parts := make([]string, 0, 4)

	for _, part := range []string{l.City, l.StateOrProvince, l.PostalCode, l.Country} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}

// Key is a normalized form of the location, stable across casing and surrounding whitespace.
func (l Location) Key() string {
	parts := []string{l.Country, l.StateOrProvince, l.City, l.PostalCode, l.Coordinates.String()}
	for i, part := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(part))
	}

	return strings.Join(parts, "|")
}

func (c Coordinates) String() string {
	if !c.Valid {
		return ""
	}

	return strconv.FormatFloat(c.Latitude, 'f', 4, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', 4, 64)
}

type Status int

const (
	StatusNotFound Status = iota
	StatusFound
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "not_found"
	}
}

// Resolution is the outcome of resolving a location. ZoneID is set only when Status is StatusFound.
type Resolution struct {
	Status Status `json:"status"`
	ZoneID string `json:"zone_id,omitempty"`
}

func Found(zoneID string) Resolution {
	return Resolution{Status: StatusFound, ZoneID: zoneID}
}

func NotFound() Resolution {
	return Resolution{Status: StatusNotFound}
}

func Unavailable() Resolution {
	return Resolution{Status: StatusUnavailable}
}

func (r Resolution) IsFound() bool {
	return r.Status == StatusFound
}
