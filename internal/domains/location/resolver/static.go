package resolver

import (
	"context"
	"strings"

	"timevault/internal/domains/location/model"
)

type static struct {
	zoneID string
}

// NewStatic resolves every location to zoneID. An empty zoneID resolves nothing.
func NewStatic(zoneID string) Resolver {
	return &static{zoneID: strings.TrimSpace(zoneID)}
}

func (s *static) Resolve(_ context.Context, _ model.Location) model.Resolution {
	if s.zoneID == "" {
		return model.NotFound()
	}

	return model.Found(s.zoneID)
}
