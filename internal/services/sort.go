package services

import (
	"cmp"
	"slices"

	"github.com/aafham/Masjid-hunt/internal/domain"
)

// SortMosques returns a stably sorted copy. Items without a distance go last
// in both orders.
func SortMosques(mosques []domain.Mosque, order domain.SortOrder) []domain.Mosque {
	out := slices.Clone(mosques)

	slices.SortStableFunc(out, func(a, b domain.Mosque) int {
		switch {
		case a.DistanceMeters == nil && b.DistanceMeters == nil:
			return 0
		case a.DistanceMeters == nil:
			return 1
		case b.DistanceMeters == nil:
			return -1
		}

		c := cmp.Compare(*a.DistanceMeters, *b.DistanceMeters)
		if order == domain.SortFarthest {
			return -c
		}
		return c
	})

	return out
}
