package services

import (
	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/ports"
)

// FallbackResolver serves the pre-seeded mosque lists used when the
// nearby-search provider is unavailable or returns nothing usable.
type FallbackResolver struct {
	Dataset ports.FallbackDataset
}

func NewFallbackResolver(ds ports.FallbackDataset) *FallbackResolver {
	return &FallbackResolver{Dataset: ds}
}

// Resolve returns the list seeded for stationID, else the default list,
// else an empty slice. Items are fresh copies tagged as estimated, with
// distances cleared for enrichment.
func (r *FallbackResolver) Resolve(stationID string) []domain.Mosque {
	if r == nil || r.Dataset == nil {
		return []domain.Mosque{}
	}

	list, ok := r.Dataset.FallbackFor(stationID)
	if !ok {
		list, _ = r.Dataset.FallbackFor(r.Dataset.DefaultStationID())
	}

	out := make([]domain.Mosque, 0, len(list))
	for _, m := range list {
		m.DistanceMeters = nil
		m.DurationMinutes = nil
		m.DistanceType = domain.DistanceEstimated
		out = append(out, m)
	}
	return out
}
