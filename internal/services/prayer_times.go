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
)

const DefaultPrayerCacheTTL = 10 * time.Minute

// PrayerNames lists the daily prayers returned to clients, in order.
var PrayerNames = []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

// PrayerTimesService serves today's prayer times for supported areas.
type PrayerTimesService struct {
	Provider   ports.PrayerTimesProvider
	Cache      ports.Cache[domain.PrayerTimes]
	TTL        time.Duration
	SourceName string
}

func NewPrayerTimesService(
	provider ports.PrayerTimesProvider,
	cache ports.Cache[domain.PrayerTimes],
	ttl time.Duration,
) *PrayerTimesService {
	return &PrayerTimesService{Provider: provider, Cache: cache, TTL: ttl, SourceName: "aladhan"}
}

// PrayerCacheKey groups nearby coordinates (two decimals, ~1 km) per area.
func PrayerCacheKey(area domain.PrayerArea, at domain.Coordinates) string {
	return fmt.Sprintf("prayer:%s:%.2f:%.2f", area, at.Lat, at.Lon)
}

// Get returns prayer times for a coordinate inside Kuala Lumpur or Selangor.
// Provider failures are returned wrapped; there is no fallback dataset.
func (s *PrayerTimesService) Get(ctx context.Context, at domain.Coordinates) (pt domain.PrayerTimes, err error) {
	defer obs.Time(ctx, "prayer_times")(&err)

	if err := at.Validate(); err != nil {
		return domain.PrayerTimes{}, fmt.Errorf("prayer times: %w", err)
	}

	area, ok := domain.DetectPrayerArea(at)
	if !ok {
		return domain.PrayerTimes{}, fmt.Errorf("prayer times: (%f,%f): %w", at.Lat, at.Lon, domain.ErrUnsupportedArea)
	}

	key := PrayerCacheKey(area, at)
	if s.Cache != nil {
		entry, ok, err := s.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("req_id=%s op=prayer_times cache=error key=%s err=%v", obs.RequestID(ctx), key, err)
		} else if ok {
			return entry.Value, nil
		}
	}

	if s.Provider == nil {
		return domain.PrayerTimes{}, fmt.Errorf("prayer times: %w: no provider configured", domain.ErrProviderUnavailable)
	}

	raw, err := s.Provider.GetTimings(ctx, at)
	if err != nil {
		return domain.PrayerTimes{}, fmt.Errorf("prayer times: %w", err)
	}

	timings := make(map[string]string, len(PrayerNames))
	for _, name := range PrayerNames {
		timings[name] = normalizeTime(raw[name])
	}
	pt = domain.PrayerTimes{Area: area, Source: s.SourceName, Timings: timings}

	if s.Cache != nil {
		ttl := s.TTL
		if ttl <= 0 {
			ttl = DefaultPrayerCacheTTL
		}
		if err := s.Cache.Put(ctx, key, pt, ttl); err != nil {
			log.Printf("req_id=%s op=prayer_times cache=write_failed key=%s err=%v", obs.RequestID(ctx), key, err)
		}
	}

	return pt, nil
}

// normalizeTime strips a trailing timezone label ("05:58 (+08)") and
// renders a missing value as "-".
func normalizeTime(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	hhmm, _, _ := strings.Cut(v, " ")
	return hhmm
}
