package services

import (
	"context"
	"log"
	"math"

	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/geo"
	"github.com/aafham/Masjid-hunt/internal/platform/obs"
	"github.com/aafham/Masjid-hunt/internal/ports"
)

// WalkingSpeedMetersPerMinute converts an estimated distance into minutes.
// 80 m/min is an average adult walking pace; override per finder with
// MosqueFinder.WalkingSpeed.
const WalkingSpeedMetersPerMinute = 80.0

// EnrichDistances attaches a distance and walking duration to every mosque.
//
// One batched matrix call is attempted. A nil matrix or a failed batch makes
// every item fall back to a haversine estimate. A failed or missing element
// only affects that item. The input is not modified.
func EnrichDistances(
	ctx context.Context,
	origin domain.Coordinates,
	mosques []domain.Mosque,
	matrix ports.DistanceMatrixProvider,
	metersPerMinute float64,
) []domain.Mosque {
	if metersPerMinute <= 0 {
		metersPerMinute = WalkingSpeedMetersPerMinute
	}

	out := make([]domain.Mosque, len(mosques))
	copy(out, mosques)
	if len(out) == 0 {
		return out
	}

	if matrix == nil {
		for i := range out {
			out[i] = estimated(origin, out[i], metersPerMinute)
		}
		return out
	}

	destinations := make([]domain.Coordinates, len(out))
	for i, m := range out {
		destinations[i] = m.Coordinates()
	}

	elements, err := matrix.GetDistances(ctx, origin, destinations)
	if err != nil {
		log.Printf("req_id=%s op=enrich_distances fallback=haversine count=%d err=%v",
			obs.RequestID(ctx), len(out), err)
		for i := range out {
			out[i] = estimated(origin, out[i], metersPerMinute)
		}
		return out
	}

	if len(elements) != len(destinations) {
		log.Printf("req_id=%s op=enrich_distances elements=%d count=%d",
			obs.RequestID(ctx), len(elements), len(destinations))
	}

	partial := 0
	for i := range out {
		if i >= len(elements) {
			partial++
			out[i] = estimated(origin, out[i], metersPerMinute)
			continue
		}
		e := elements[i]
		if !e.OK || e.Result.DistanceMeters < 0 || e.Result.DurationSeconds < 0 {
			partial++
			out[i] = estimated(origin, out[i], metersPerMinute)
			continue
		}
		out[i] = routed(out[i], e.Result)
	}
	if partial > 0 {
		log.Printf("req_id=%s op=enrich_distances partial=%d count=%d", obs.RequestID(ctx), partial, len(out))
	}

	return out
}

func routed(m domain.Mosque, r ports.DistanceResult) domain.Mosque {
	meters := r.DistanceMeters
	minutes := max(1, int(math.Ceil(float64(r.DurationSeconds)/60)))

	m.DistanceMeters = &meters
	m.DurationMinutes = &minutes
	m.DistanceType = domain.DistanceRouted
	return m
}

func estimated(origin domain.Coordinates, m domain.Mosque, metersPerMinute float64) domain.Mosque {
	meters := geo.DistanceMeters(origin, m.Coordinates())
	minutes := max(1, int(math.Round(float64(meters)/metersPerMinute)))

	m.DistanceMeters = &meters
	m.DurationMinutes = &minutes
	m.DistanceType = domain.DistanceEstimated
	return m
}
