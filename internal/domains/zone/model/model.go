package model

import (
	"errors"
	"time"
)

const EntityName = "zone"

// Scheme is the naming scheme a time zone identifier belongs to.
type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeIana
	SchemeWindows
	SchemeRails
)

func (s Scheme) String() string {
	switch s {
	case SchemeIana:
		return "iana"
	case SchemeWindows:
		return "windows"
	case SchemeRails:
		return "rails"
	default:
		return "unknown"
	}
}

// Zone is an identifier resolved to zone rules. ID is always the canonical IANA name.
type Zone struct {
	ID       string
	Location *time.Location
}

// Identifiers holds the names one zone goes by in every supported scheme.
// Iana and Windows are nil when the zone has no name in that scheme.
type Identifiers struct {
	Iana    *string
	Windows *string
	Rails   []string
}

// WindowsMapping is one row of the Windows to IANA table. Territory "001" marks the primary mapping.
type WindowsMapping struct {
	Windows   string   `json:"windows"`
	Territory string   `json:"territory"`
	Iana      []string `json:"iana"`
}

var ErrZoneUnrecognized = errors.New("time zone identifier not recognized")
