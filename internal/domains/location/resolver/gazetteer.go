package resolver

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"timevault/internal/domains/location/model"

	"github.com/bradfitz/latlong"
	"github.com/samber/lo"
)

//go:embed data/*.json
var data embed.FS

type country struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
	Zone    string   `json:"zone"`
}

type subdivision struct {
	Country string `json:"country"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Zone    string `json:"zone"`
}

type city struct {
	Country string `json:"country"`
	Name    string `json:"name"`
	Zone    string `json:"zone"`
}

type gazetteer struct {
	// keyed by normalized code, name and aliases
	countries map[string]country
	// keyed by "<country code>|<normalized code or name>"
	subdivisions map[string]string
	// keyed by "<country code>|<normalized name>"
	cities map[string]string
	// normalized name to the distinct zones of every city with that name
	citiesAnywhere map[string][]string
}

// NewGazetteer builds an offline resolver from the embedded place tables.
// Lookup order: coordinates, city, state or province, then country when the whole country shares one zone.
func NewGazetteer() (Resolver, error) {
	var (
		countries    []country
		subdivisions []subdivision
		cities       []city
	)

	for name, target := range map[string]any{
		"data/countries.json":    &countries,
		"data/subdivisions.json": &subdivisions,
		"data/cities.json":       &cities,
	} {
		raw, err := data.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		if err := json.Unmarshal(raw, target); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
	}

	g := &gazetteer{
		countries:      make(map[string]country, len(countries)*3),
		subdivisions:   make(map[string]string, len(subdivisions)*2),
		cities:         make(map[string]string, len(cities)),
		citiesAnywhere: make(map[string][]string, len(cities)),
	}

	for _, c := range countries {
		for _, key := range append([]string{c.Code, c.Name}, c.Aliases...) {
			g.countries[normalize(key)] = c
		}
	}

	for _, s := range subdivisions {
		g.subdivisions[placeKey(s.Country, s.Code)] = s.Zone
		g.subdivisions[placeKey(s.Country, s.Name)] = s.Zone
	}

	for _, c := range cities {
		g.cities[placeKey(c.Country, c.Name)] = c.Zone

		name := normalize(c.Name)
		g.citiesAnywhere[name] = lo.Uniq(append(g.citiesAnywhere[name], c.Zone))
	}

	return g, nil
}

func (g *gazetteer) Resolve(ctx context.Context, location model.Location) model.Resolution {
	if ctx.Err() != nil {
		return model.Unavailable()
	}

	if onGlobe(location.Coordinates) {
		if zone := latlong.LookupZoneName(location.Coordinates.Latitude, location.Coordinates.Longitude); zone != "" {
			return model.Found(zone)
		}
	}

	c, ok := g.countries[normalize(location.Country)]
	if !ok {
		// Without a country a city name is only trusted when every city of that name shares a zone.
		if zones := g.citiesAnywhere[normalize(location.City)]; len(zones) == 1 {
			return model.Found(zones[0])
		}

		return model.NotFound()
	}

	if zone, ok := g.cities[placeKey(c.Code, location.City)]; ok {
		return model.Found(zone)
	}

	if zone, ok := g.subdivisions[placeKey(c.Code, location.StateOrProvince)]; ok {
		return model.Found(zone)
	}

	if c.Zone != "" {
		return model.Found(c.Zone)
	}

	return model.NotFound()
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func placeKey(countryCode, name string) string {
	return normalize(countryCode) + "|" + normalize(name)
}

// onGlobe reports whether c is a finite point inside WGS84 bounds. latlong answers with some zone
// for any input, so anything else falls through to the place-name lookup.
func onGlobe(c model.Coordinates) bool {
	if !c.Valid {
		return false
	}

	for _, v := range []float64{c.Latitude, c.Longitude} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}
