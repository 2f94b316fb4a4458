package ports

import (
	"context"

	"github.com/aafham/Masjid-hunt/internal/domain"
)

// Contract for fetching today's prayer timings at a coordinate.
type PrayerTimesProvider interface {
	GetTimings(ctx context.Context, at domain.Coordinates) (map[string]string, error)
}
