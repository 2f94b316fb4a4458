package ports

import "github.com/aafham/Masjid-hunt/internal/domain"

// Port: read-only access to the station reference data.
type StationRepository interface {
	GetStationByID(id string) (domain.Station, bool)
	// ListStations returns all stations when lineType is empty.
	ListStations(lineType domain.LineType) []domain.Station
}

// Port: pre-seeded mosque lists keyed by station id.
type FallbackDataset interface {
	FallbackFor(stationID string) ([]domain.Mosque, bool)
	DefaultStationID() string
}
