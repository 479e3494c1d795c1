package repository

import (
	"embed"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"timevault/internal/domains/zone/model"

	"github.com/samber/lo"
)

const (
	primaryTerritory = "001"

	fileWindows = "data/windows_zones.json"
	fileRails   = "data/rails_zones.json"
	fileAliases = "data/aliases.json"
)

//go:embed data/*.json
var data embed.FS

// Zone answers scheme lookups against the embedded mapping tables. Lookups try the exact spelling
// first and fall back to a case-insensitive match ("america/new_york", "eastern standard time").
type Zone interface {
	// Canonical follows IANA links ("US/Eastern" -> "America/New_York"). Unlinked ids come back unchanged.
	Canonical(ianaID string) string
	IanaToWindows(ianaID string) (string, bool)
	WindowsToIana(windowsID string) (string, bool)
	RailsToIana(railsID string) (string, bool)
	IanaToRails(ianaID string) []string
	// WindowsName and RailsName return the table spelling of a name matched case-insensitively.
	WindowsName(windowsID string) (string, bool)
	RailsName(railsID string) (string, bool)
}

type repositoryImpl struct {
	aliases        map[string]string
	ianaToWindows  map[string]string
	windowsPrimary map[string]string
	railsToIana    map[string]string
	ianaToRails    map[string][]string
	windowsToRails map[string][]string

	// lower-cased name -> table spelling, one per scheme
	ianaNames    map[string]string
	windowsNames map[string]string
	railsNames   map[string]string
}

// New decodes the embedded tables. The result is read-only and safe for concurrent use.
func New() (Zone, error) {
	r := &repositoryImpl{
		ianaToWindows:  map[string]string{},
		windowsPrimary: map[string]string{},
		ianaToRails:    map[string][]string{},
		windowsToRails: map[string][]string{},
		ianaNames:      map[string]string{},
		windowsNames:   map[string]string{},
		railsNames:     map[string]string{},
	}

	if err := decode(fileAliases, &r.aliases); err != nil {
		return nil, err
	}

	var windows []model.WindowsMapping
	if err := decode(fileWindows, &windows); err != nil {
		return nil, err
	}

	for _, row := range windows {
		if row.Territory == primaryTerritory {
			r.windowsPrimary[row.Windows] = r.Canonical(row.Iana[0])
		}

		for _, id := range row.Iana {
			r.ianaToWindows[r.Canonical(id)] = row.Windows
		}
	}

	var rails map[string]string
	if err := decode(fileRails, &rails); err != nil {
		return nil, err
	}

	r.railsToIana = lo.MapValues(rails, func(id string, _ string) string {
		return r.Canonical(id)
	})

	for name, id := range r.railsToIana {
		r.ianaToRails[id] = append(r.ianaToRails[id], name)

		if windows, ok := r.ianaToWindows[id]; ok {
			r.windowsToRails[windows] = append(r.windowsToRails[windows], name)
		}
	}

	for _, names := range r.ianaToRails {
		slices.Sort(names)
	}

	fold(r.ianaNames, slices.Collect(maps.Keys(r.aliases)))
	fold(r.ianaNames, slices.Collect(maps.Keys(r.ianaToWindows)))
	fold(r.windowsNames, slices.Collect(maps.Keys(r.windowsPrimary)))
	fold(r.railsNames, slices.Collect(maps.Keys(r.railsToIana)))

	for _, names := range r.windowsToRails {
		slices.Sort(names)
	}

	return r, nil
}

func decode(name string, target any) error {
	raw, err := data.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}

	return nil
}

// fold indexes names by their lower-cased form. Names that collide once folded keep the
// lexicographically smallest spelling so the index does not depend on map order.
func fold(index map[string]string, names []string) {
	for _, name := range names {
		key := strings.ToLower(name)
		if existing, ok := index[key]; !ok || name < existing {
			index[key] = name
		}
	}
}

// spell returns the table spelling of id: id itself when the table holds it, its case-folded
// match otherwise.
func spell[V any](table map[string]V, index map[string]string, id string) (string, bool) {
	if _, ok := table[id]; ok {
		return id, true
	}

	name, ok := index[strings.ToLower(id)]

	return name, ok
}

func (r *repositoryImpl) ianaName(ianaID string) string {
	if _, ok := r.aliases[ianaID]; ok {
		return ianaID
	}

	if name, ok := spell(r.ianaToWindows, r.ianaNames, ianaID); ok {
		return name
	}

	return ianaID
}

func (r *repositoryImpl) Canonical(ianaID string) string {
	ianaID = r.ianaName(ianaID)

	if target, ok := r.aliases[ianaID]; ok {
		return target
	}

	return ianaID
}

func (r *repositoryImpl) IanaToWindows(ianaID string) (string, bool) {
	if strings.TrimSpace(ianaID) == "" {
		return "", false
	}

	windows, ok := r.ianaToWindows[r.Canonical(ianaID)]

	return windows, ok
}

func (r *repositoryImpl) WindowsName(windowsID string) (string, bool) {
	return spell(r.windowsPrimary, r.windowsNames, windowsID)
}

func (r *repositoryImpl) WindowsToIana(windowsID string) (string, bool) {
	name, ok := r.WindowsName(windowsID)
	if !ok {
		return "", false
	}

	return r.windowsPrimary[name], true
}

func (r *repositoryImpl) RailsName(railsID string) (string, bool) {
	return spell(r.railsToIana, r.railsNames, railsID)
}

func (r *repositoryImpl) RailsToIana(railsID string) (string, bool) {
	name, ok := r.RailsName(railsID)
	if !ok {
		return "", false
	}

	return r.railsToIana[name], true
}

// IanaToRails returns every Rails name for the zone, sorted. A zone Rails does not name directly
// borrows every Rails name that shares its Windows zone.
func (r *repositoryImpl) IanaToRails(ianaID string) []string {
	id := r.Canonical(ianaID)

	if names, ok := r.ianaToRails[id]; ok {
		return slices.Clone(names)
	}

	windows, ok := r.ianaToWindows[id]
	if !ok {
		return nil
	}

	return slices.Clone(r.windowsToRails[windows])
}
