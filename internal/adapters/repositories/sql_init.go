package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/jmoiron/sqlx"
)

// InitSchema creates the reference-data tables. The DDL is valid for both
// SQLite and Postgres.
func InitSchema(db *sqlx.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS stations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		line_type TEXT NOT NULL,
		line_name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL
	);
	`

	createFallbackQuery := `
	CREATE TABLE IF NOT EXISTS fallback_mosques (
		station_id TEXT NOT NULL,
		place_id TEXT NOT NULL,
		ordinal INTEGER NOT NULL,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (station_id, place_id)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stations_line_type
	ON stations(line_type);
	`

	statements := []string{
		createStationsQuery,
		createFallbackQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// StationSeed is one entry of the stations seed file.
type StationSeed struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	LineType string  `json:"line_type"`
	LineName string  `json:"line_name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// FallbackMosqueSeed is one mosque of the fallback seed file.
type FallbackMosqueSeed struct {
	PlaceID string  `json:"placeId"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// ReadStationSeeds parses and validates a stations seed file.
func ReadStationSeeds(path string) ([]StationSeed, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read station seeds: read %q: %w", path, err)
	}

	var data []StationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("read station seeds: parse json: %w", err)
	}

	seen := make(map[string]bool, len(data))
	for i := range data {
		s := &data[i]
		s.ID = strings.TrimSpace(s.ID)
		if s.ID == "" {
			return nil, fmt.Errorf("read station seeds: item at index %d: id cannot be empty", i+1)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("read station seeds: duplicate id %q", s.ID)
		}
		seen[s.ID] = true

		lt, ok := domain.ParseLineType(s.LineType)
		if !ok {
			return nil, fmt.Errorf("read station seeds: id=%s: unknown line_type %q", s.ID, s.LineType)
		}
		s.LineType = string(lt)

		c := domain.Coordinates{Lat: s.Lat, Lon: s.Lng}
		if err := c.Validate(); err != nil || c.IsZero() {
			return nil, fmt.Errorf("read station seeds: id=%s: invalid coordinates (%f,%f)", s.ID, s.Lat, s.Lng)
		}
	}

	return data, nil
}

// ReadFallbackSeeds parses a fallback seed file: station id -> mosques.
// Mosques with missing ids or unusable coordinates are rejected.
func ReadFallbackSeeds(path string) (map[string][]FallbackMosqueSeed, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fallback seeds: read %q: %w", path, err)
	}

	var data map[string][]FallbackMosqueSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("read fallback seeds: parse json: %w", err)
	}

	for stationID, list := range data {
		for i, m := range list {
			if strings.TrimSpace(m.PlaceID) == "" {
				return nil, fmt.Errorf("read fallback seeds: station=%s item %d: placeId cannot be empty", stationID, i+1)
			}
			c := domain.Coordinates{Lat: m.Lat, Lon: m.Lng}
			if err := c.Validate(); err != nil || c.IsZero() {
				return nil, fmt.Errorf("read fallback seeds: station=%s place=%s: invalid coordinates", stationID, m.PlaceID)
			}
		}
	}

	return data, nil
}

// SeedFromJSON upserts stations and fallback mosques from the seed files.
// Re-running it is safe.
func SeedFromJSON(db *sqlx.DB, stationsPath, fallbackPath string) error {
	stations, err := ReadStationSeeds(stationsPath)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	fallback, err := ReadFallbackSeeds(fallbackPath)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stationQuery := tx.Rebind(`
	INSERT INTO stations (id, name, line_type, line_name, lat, lng)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE SET
		name = excluded.name,
		line_type = excluded.line_type,
		line_name = excluded.line_name,
		lat = excluded.lat,
		lng = excluded.lng;
	`)
	for _, s := range stations {
		if _, err := tx.Exec(stationQuery, s.ID, s.Name, s.LineType, s.LineName, s.Lat, s.Lng); err != nil {
			return fmt.Errorf("seed: insert station id=%s: %w", s.ID, err)
		}
	}

	mosqueQuery := tx.Rebind(`
	INSERT INTO fallback_mosques (station_id, place_id, ordinal, name, lat, lng, address)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (station_id, place_id) DO UPDATE SET
		ordinal = excluded.ordinal,
		name = excluded.name,
		lat = excluded.lat,
		lng = excluded.lng,
		address = excluded.address;
	`)
	for stationID, list := range fallback {
		for pos, m := range list {
			if _, err := tx.Exec(mosqueQuery, stationID, m.PlaceID, pos, m.Name, m.Lat, m.Lng, m.Address); err != nil {
				return fmt.Errorf("seed: insert fallback station=%s place=%s: %w", stationID, m.PlaceID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}
