package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/platform/obs"
	"github.com/aafham/Masjid-hunt/internal/ports"
	"golang.org/x/sync/singleflight"
)

const (
	// Nearby-search category filter.
	MosqueCategory = "mosque"

	DefaultMosqueCacheTTL = 10 * time.Minute

	// Upper bound for one shared resolution, detached from any single caller.
	DefaultResolveTimeout = 30 * time.Second
)

// MosqueFinder resolves the mosques around a station.
//
// A lookup runs cache check, source resolution (search provider, else the
// fallback dataset), distance enrichment, sort and cache store, in that
// order. Upstream failures never reach the caller: every one of them has a
// degraded path. Concurrent misses on the same key share one resolution.
type MosqueFinder struct {
	Stations ports.StationRepository
	Cache    ports.Cache[domain.CachedMosques]
	// Search is nil when no search credential is configured.
	Search ports.NearbySearchProvider
	// Matrix is nil when no matrix credential is configured.
	Matrix   ports.DistanceMatrixProvider
	Fallback *FallbackResolver

	TTL            time.Duration
	WalkingSpeed   float64
	ResolveTimeout time.Duration

	group singleflight.Group
}

func NewMosqueFinder(
	stations ports.StationRepository,
	cache ports.Cache[domain.CachedMosques],
	search ports.NearbySearchProvider,
	matrix ports.DistanceMatrixProvider,
	fallback *FallbackResolver,
	ttl time.Duration,
) *MosqueFinder {
	return &MosqueFinder{
		Stations:       stations,
		Cache:          cache,
		Search:         search,
		Matrix:         matrix,
		Fallback:       fallback,
		TTL:            ttl,
		WalkingSpeed:   WalkingSpeedMetersPerMinute,
		ResolveTimeout: DefaultResolveTimeout,
	}
}

// MosqueCacheKey is the cache key for one (station, radius, sort) lookup.
func MosqueCacheKey(stationID string, radiusKm int, order domain.SortOrder) string {
	return fmt.Sprintf("mosques:%s:%d:%s", stationID, radiusKm, order)
}

// FindByStationID looks the station up and resolves its mosques.
// Unknown sort input falls back to nearest; radius is clamped to [1,3] km.
func (f *MosqueFinder) FindByStationID(
	ctx context.Context,
	stationID string,
	radiusKm float64,
	sortInput string,
) (domain.MosqueResult, error) {
	stationID = strings.TrimSpace(stationID)
	if stationID == "" {
		return domain.MosqueResult{}, fmt.Errorf("find mosques: %w: station id is required", domain.ErrInvalidParameters)
	}

	radius, err := domain.ClampRadius(radiusKm)
	if err != nil {
		return domain.MosqueResult{}, fmt.Errorf("find mosques: %w", err)
	}

	station, ok := f.Stations.GetStationByID(stationID)
	if !ok {
		return domain.MosqueResult{}, fmt.Errorf("find mosques: station %q: %w", stationID, domain.ErrOriginNotFound)
	}

	return f.FindByStation(ctx, station, radius, domain.ParseSortOrder(sortInput))
}

// FindByStation resolves mosques around an already-known station.
func (f *MosqueFinder) FindByStation(
	ctx context.Context,
	station domain.Station,
	radiusKm int,
	order domain.SortOrder,
) (res domain.MosqueResult, err error) {
	defer obs.Time(ctx, "find_mosques")(&err)

	radius, err := domain.ClampRadius(float64(radiusKm))
	if err != nil {
		return domain.MosqueResult{}, fmt.Errorf("find mosques: %w", err)
	}
	if err := station.Coordinates.Validate(); err != nil {
		return domain.MosqueResult{}, fmt.Errorf("find mosques: station %q: %w", station.ID, err)
	}
	order = domain.ParseSortOrder(string(order))

	key := MosqueCacheKey(station.ID, radius, order)

	if f.Cache != nil {
		entry, ok, err := f.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("req_id=%s op=find_mosques cache=error key=%s err=%v", obs.RequestID(ctx), key, err)
		} else if ok {
			return newMosqueResult(station, radius, entry.Value), nil
		}
	}

	// The flight is shared and outlives the caller that started it.
	v, _, _ := f.group.Do(key, func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.resolveTimeout())
		defer cancel()
		return f.resolve(rctx, station, radius, order, key), nil
	})

	return newMosqueResult(station, radius, v.(domain.CachedMosques)), nil
}

func (f *MosqueFinder) resolve(
	ctx context.Context,
	station domain.Station,
	radiusKm int,
	order domain.SortOrder,
	key string,
) domain.CachedMosques {
	mosques, source := f.resolveSource(ctx, station, radiusKm)
	mosques = EnrichDistances(ctx, station.Coordinates, mosques, f.Matrix, f.WalkingSpeed)
	mosques = SortMosques(mosques, order)

	value := domain.CachedMosques{Mosques: mosques, Source: source}

	if ctx.Err() != nil {
		log.Printf("req_id=%s op=find_mosques cache=skip key=%s err=%v", obs.RequestID(ctx), key, ctx.Err())
		return value
	}

	if f.Cache != nil {
		if err := f.Cache.Put(ctx, key, value, f.ttl()); err != nil {
			log.Printf("req_id=%s op=find_mosques cache=write_failed key=%s err=%v", obs.RequestID(ctx), key, err)
		}
	}

	return value
}

func (f *MosqueFinder) resolveSource(
	ctx context.Context,
	station domain.Station,
	radiusKm int,
) ([]domain.Mosque, domain.Source) {
	if f.Search == nil {
		return f.Fallback.Resolve(station.ID), domain.SourceFallback
	}

	candidates, err := f.Search.SearchNearby(ctx, station.Coordinates, radiusKm*1000, MosqueCategory)
	if err != nil {
		log.Printf("req_id=%s op=search_nearby station=%s fallback=dataset err=%v", obs.RequestID(ctx), station.ID, err)
		return f.Fallback.Resolve(station.ID), domain.SourceFallback
	}

	mosques := mosquesFromCandidates(candidates)
	if len(mosques) == 0 {
		log.Printf("req_id=%s op=search_nearby station=%s fallback=dataset reason=empty", obs.RequestID(ctx), station.ID)
		return f.Fallback.Resolve(station.ID), domain.SourceFallback
	}

	return mosques, domain.SourcePrimary
}

// mosquesFromCandidates dedupes by place id, caps at MaxResults, then drops
// candidates whose coordinates are missing or invalid.
func mosquesFromCandidates(candidates []ports.PlaceCandidate) []domain.Mosque {
	seen := make(map[string]struct{}, len(candidates))
	unique := make([]ports.PlaceCandidate, 0, min(len(candidates), domain.MaxResults))
	for _, c := range candidates {
		if c.PlaceID == "" {
			continue
		}
		if _, dup := seen[c.PlaceID]; dup {
			continue
		}
		seen[c.PlaceID] = struct{}{}
		unique = append(unique, c)
		if len(unique) == domain.MaxResults {
			break
		}
	}

	out := make([]domain.Mosque, 0, len(unique))
	for _, c := range unique {
		if c.Coordinates.IsZero() || c.Coordinates.Validate() != nil {
			continue
		}
		out = append(out, domain.Mosque{
			PlaceID:      c.PlaceID,
			Name:         c.Name,
			Lat:          c.Coordinates.Lat,
			Lng:          c.Coordinates.Lon,
			Address:      c.Address,
			DistanceType: domain.DistanceEstimated,
		})
	}
	return out
}

func (f *MosqueFinder) ttl() time.Duration {
	if f.TTL <= 0 {
		return DefaultMosqueCacheTTL
	}
	return f.TTL
}

func (f *MosqueFinder) resolveTimeout() time.Duration {
	if f.ResolveTimeout <= 0 {
		return DefaultResolveTimeout
	}
	return f.ResolveTimeout
}

// newMosqueResult copies v deeply enough that callers cannot reach the cached
// distance and duration values.
func newMosqueResult(station domain.Station, radiusKm int, v domain.CachedMosques) domain.MosqueResult {
	mosques := make([]domain.Mosque, len(v.Mosques))
	for i, m := range v.Mosques {
		m.DistanceMeters = cloneInt(m.DistanceMeters)
		m.DurationMinutes = cloneInt(m.DurationMinutes)
		mosques[i] = m
	}
	return domain.MosqueResult{
		Station:  station,
		RadiusKm: radiusKm,
		Source:   v.Source,
		Mosques:  mosques,
	}
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
