package services

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/geo"
	"github.com/tidwall/rtree"
)

const (
	DefaultNearestStations = 5
	MaxNearestStations     = 50
)

// NearbyStation is a station with its straight-line distance from a point.
type NearbyStation struct {
	Station        domain.Station
	DistanceMeters int
}

// NearestStations summarises the closest station overall and per line type.
type NearestStations struct {
	Overall    *NearbyStation
	ByLineType map[domain.LineType]NearbyStation
}

// StationLocator answers nearest-station queries over an R-tree of station
// points keyed by (lon, lat). The index is built once and read-only after.
type StationLocator struct {
	tree  rtree.RTreeG[domain.Station]
	count int
}

func NewStationLocator(stations []domain.Station) *StationLocator {
	l := &StationLocator{}
	for _, s := range stations {
		if s.Coordinates.IsZero() || s.Coordinates.Validate() != nil {
			continue
		}
		pt := point(s.Coordinates)
		l.tree.Insert(pt, pt, s)
		l.count++
	}
	return l
}

func point(c domain.Coordinates) [2]float64 { return [2]float64{c.Lon, c.Lat} }

// Nearest returns up to limit stations ordered by haversine distance.
// limit <= 0 means DefaultNearestStations; it is capped at MaxNearestStations.
func (l *StationLocator) Nearest(at domain.Coordinates, limit int) ([]NearbyStation, error) {
	if err := at.Validate(); err != nil {
		return nil, fmt.Errorf("nearest stations: %w", err)
	}
	if limit <= 0 {
		limit = DefaultNearestStations
	}
	limit = min(limit, MaxNearestStations)

	// Planar order in degree space is close to, but not exactly, great-circle
	// order, so over-fetch and re-rank.
	want := min(l.count, limit*2+8)
	return l.nearby(at, want)[:min(limit, want)], nil
}

// NearestByLineType returns the closest station per line type plus the
// closest overall. Overall is nil when the index is empty.
func (l *StationLocator) NearestByLineType(at domain.Coordinates) (NearestStations, error) {
	if err := at.Validate(); err != nil {
		return NearestStations{}, fmt.Errorf("nearest stations by line: %w", err)
	}

	res := NearestStations{ByLineType: make(map[domain.LineType]NearbyStation, len(domain.LineTypes))}

	for _, ns := range l.nearby(at, l.count) {
		if res.Overall == nil {
			first := ns
			res.Overall = &first
		}
		if _, ok := res.ByLineType[ns.Station.LineType]; !ok {
			res.ByLineType[ns.Station.LineType] = ns
		}
	}

	return res, nil
}

func (l *StationLocator) nearby(at domain.Coordinates, n int) []NearbyStation {
	out := make([]NearbyStation, 0, n)
	if n <= 0 {
		return out
	}

	pt := point(at)
	l.tree.Nearby(
		rtree.BoxDist[float64, domain.Station](pt, pt, nil),
		func(_, _ [2]float64, s domain.Station, _ float64) bool {
			out = append(out, NearbyStation{
				Station:        s,
				DistanceMeters: geo.DistanceMeters(at, s.Coordinates),
			})
			return len(out) < n
		},
	)

	slices.SortStableFunc(out, func(a, b NearbyStation) int {
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})
	return out
}
