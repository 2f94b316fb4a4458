package domain

// DistanceType records where a mosque's distance came from.
type DistanceType string

const (
	// Distance computed by a walking route (distance matrix API).
	DistanceRouted DistanceType = "walking_api"
	// Distance estimated geometrically with the haversine formula.
	DistanceEstimated DistanceType = "haversine_estimate"
)

// Source records which tier supplied the mosque list.
type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
)

// Represents a single mosque near a station.
// Distance fields are nil until enrichment. Enrichment returns a new value
// rather than mutating the input.
type Mosque struct {
	PlaceID         string       `json:"place_id"`
	Name            string       `json:"name"`
	Lat             float64      `json:"lat"`
	Lng             float64      `json:"lng"`
	Address         string       `json:"address,omitempty"`
	DistanceMeters  *int         `json:"distance_meters,omitempty"`
	DurationMinutes *int         `json:"duration_minutes,omitempty"`
	DistanceType    DistanceType `json:"distance_type"`
}

func (m Mosque) Coordinates() Coordinates { return Coordinates{Lat: m.Lat, Lon: m.Lng} }

// CachedMosques is the value stored per (station, radius, sort) cache key.
type CachedMosques struct {
	Mosques []Mosque `json:"mosques"`
	Source  Source   `json:"source"`
}

// MosqueResult is the outcome of resolving mosques around a station.
type MosqueResult struct {
	Station  Station
	RadiusKm int
	Source   Source
	Mosques  []Mosque
}
