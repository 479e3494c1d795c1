package timezone

import (
	"errors"
	"fmt"
	"strings"
	"time"
	// Embeds the IANA database so zone lookups never depend on the host's zoneinfo files.
	_ "time/tzdata"

	"timevault/config"

	goCache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location

	// Loaded locations are immutable, so entries never expire.
	locations = goCache.New(goCache.NoExpiration, goCache.NoExpiration)

	ErrUnknownZone = errors.New("unknown time zone")
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Debug().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := Load(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Debug().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Load returns the zone rules for a canonical IANA identifier.
// "Local" is rejected: the host zone is not a meaningful conversion target.
func Load(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}

	if cached, found := locations.Get(id); found {
		if loc, ok := cached.(*time.Location); ok {
			return loc, nil
		}
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownZone, id, err)
	}

	locations.SetDefault(id, loc)

	return loc, nil
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")

		return time.UTC
	}

	return appLocation
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
