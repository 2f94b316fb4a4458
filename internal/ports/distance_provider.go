package ports

import (
	"context"

	"github.com/aafham/Masjid-hunt/internal/domain"
)

// Distance and travel duration between two locations.
type DistanceResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// One destination's entry in a distance matrix row.
// OK is false when the provider reported a per-element failure.
type MatrixElement struct {
	OK     bool
	Status string
	Result DistanceResult
}

// Contract for batched walking distances from one origin to many destinations.
type DistanceMatrixProvider interface {
	// Return one element per destination, in destination order.
	// An error means the whole batch failed.
	GetDistances(ctx context.Context, origin domain.Coordinates, destinations []domain.Coordinates) ([]MatrixElement, error)
}
