package repositories

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/platform/obs"
	"github.com/jmoiron/sqlx"
)

// DefaultFallbackStationID is used when a station has no fallback entry.
const DefaultFallbackStationID = "kl-sentral"

// Catalog is an immutable in-memory snapshot of the reference data.
// It implements ports.StationRepository and ports.FallbackDataset.
type Catalog struct {
	stations  []domain.Station
	byID      map[string]int
	fallback  map[string][]domain.Mosque
	defaultID string
}

// NewCatalog builds a Catalog from already-loaded values. Inputs are copied.
func NewCatalog(stations []domain.Station, fallback map[string][]domain.Mosque) *Catalog {
	c := &Catalog{
		stations:  slices.Clone(stations),
		byID:      make(map[string]int, len(stations)),
		fallback:  make(map[string][]domain.Mosque, len(fallback)),
		defaultID: DefaultFallbackStationID,
	}
	for i, s := range c.stations {
		c.byID[s.ID] = i
	}
	for id, list := range fallback {
		c.fallback[id] = slices.Clone(list)
	}
	return c
}

type stationRow struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	LineType string  `db:"line_type"`
	LineName string  `db:"line_name"`
	Lat      float64 `db:"lat"`
	Lng      float64 `db:"lng"`
}

type fallbackRow struct {
	StationID string  `db:"station_id"`
	PlaceID   string  `db:"place_id"`
	Name      string  `db:"name"`
	Lat       float64 `db:"lat"`
	Lng       float64 `db:"lng"`
	Address   string  `db:"address"`
}

// LoadCatalog reads stations and fallback mosques once.
func LoadCatalog(ctx context.Context, db *sqlx.DB) (c *Catalog, err error) {
	defer obs.Time(ctx, "load_catalog")(&err)

	if db == nil {
		return nil, errors.New("load catalog: DB is nil")
	}

	var stationRows []stationRow
	err = db.SelectContext(ctx, &stationRows, `
	SELECT id, name, line_type, line_name, lat, lng
	FROM stations
	ORDER BY line_type, name;
	`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: query stations: %w", err)
	}

	stations := make([]domain.Station, 0, len(stationRows))
	for _, r := range stationRows {
		stations = append(stations, domain.Station{
			ID:          r.ID,
			Name:        r.Name,
			LineType:    domain.LineType(r.LineType),
			LineName:    r.LineName,
			Coordinates: domain.Coordinates{Lat: r.Lat, Lon: r.Lng},
		})
	}

	var mosqueRows []fallbackRow
	err = db.SelectContext(ctx, &mosqueRows, `
	SELECT station_id, place_id, name, lat, lng, address
	FROM fallback_mosques
	ORDER BY station_id, ordinal;
	`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: query fallback mosques: %w", err)
	}

	fallback := make(map[string][]domain.Mosque)
	for _, r := range mosqueRows {
		fallback[r.StationID] = append(fallback[r.StationID], domain.Mosque{
			PlaceID:      r.PlaceID,
			Name:         r.Name,
			Lat:          r.Lat,
			Lng:          r.Lng,
			Address:      r.Address,
			DistanceType: domain.DistanceEstimated,
		})
	}

	return NewCatalog(stations, fallback), nil
}

func (c *Catalog) GetStationByID(id string) (domain.Station, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Station{}, false
	}
	return c.stations[i], true
}

// ListStations returns every station when lineType is empty, otherwise only
// stations on that line type.
func (c *Catalog) ListStations(lineType domain.LineType) []domain.Station {
	if lineType == "" {
		return slices.Clone(c.stations)
	}

	out := make([]domain.Station, 0, len(c.stations))
	for _, s := range c.stations {
		if s.LineType == lineType {
			out = append(out, s)
		}
	}
	return out
}

func (c *Catalog) FallbackFor(stationID string) ([]domain.Mosque, bool) {
	list, ok := c.fallback[stationID]
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

func (c *Catalog) DefaultStationID() string { return c.defaultID }
