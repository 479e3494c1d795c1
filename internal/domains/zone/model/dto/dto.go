package dto

import (
	"timevault/internal/domains/zone/model"
)

type ZoneResponse struct {
	Identifier   string   `json:"identifier"`
	Scheme       string   `json:"scheme"`
	IanaID       *string  `json:"iana_time_zone_id"`
	WindowsID    *string  `json:"windows_time_zone_id"`
	RailsIDs     []string `json:"rails_time_zone_ids"`
	Abbreviation string   `json:"abbreviation"`
	UTCOffset    string   `json:"utc_offset"`
	IsDST        bool     `json:"is_dst"`
}

func (z *ZoneResponse) FromIdentifiers(identifier string, scheme model.Scheme, ids model.Identifiers) {
	z.Identifier = identifier
	z.Scheme = scheme.String()
	z.IanaID = ids.Iana
	z.WindowsID = ids.Windows
	z.RailsIDs = ids.Rails

	if z.RailsIDs == nil {
		z.RailsIDs = []string{}
	}
}
