package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// LatLng formats coordinates as "lat,lng" for query-string APIs.
func (c Coordinates) LatLng() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}

// IsZero reports whether either component is missing (zero).
func (c Coordinates) IsZero() bool { return c.Lat == 0 || c.Lon == 0 }

// Validate rejects non-finite or out-of-range coordinates.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return fmt.Errorf("%w: coordinates must be finite numbers", ErrInvalidParameters)
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: coordinates out of range (%f,%f)", ErrInvalidParameters, c.Lat, c.Lon)
	}
	return nil
}
