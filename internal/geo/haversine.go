package geo

import (
	"math"

	"github.com/aafham/Masjid-hunt/internal/domain"
)

const earthRadiusMeters = 6_371_000.0

// Haversine returns the great-circle distance in meters between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	lat1r := lat1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Rounding can push a slightly above 1 for antipodal points.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Distance is Haversine over domain coordinates.
func Distance(a, b domain.Coordinates) float64 {
	return Haversine(a.Lat, a.Lon, b.Lat, b.Lon)
}

// DistanceMeters rounds Distance to whole meters.
func DistanceMeters(a, b domain.Coordinates) int {
	return int(math.Round(Distance(a, b)))
}
