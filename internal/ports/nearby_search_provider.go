package ports

import (
	"context"

	"github.com/aafham/Masjid-hunt/internal/domain"
)

// A raw point of interest as returned by a nearby-search provider.
type PlaceCandidate struct {
	PlaceID     string
	Name        string
	Coordinates domain.Coordinates
	Address     string
}

// Contract for searching points of interest around a coordinate.
type NearbySearchProvider interface {
	// Return candidates within radiusMeters of origin matching category.
	// An empty slice with a nil error is a valid, successful answer.
	SearchNearby(ctx context.Context, origin domain.Coordinates, radiusMeters int, category string) ([]PlaceCandidate, error)
}
