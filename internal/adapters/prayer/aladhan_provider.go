package prayer

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/platform/obs"
	"github.com/aafham/Masjid-hunt/internal/platform/upstream"
)

const (
	DefaultAladhanBaseURL = "https://api.aladhan.com"

	// Calculation method 11 (Majlis Ugama Islam Singapura) suits Southeast Asia.
	aladhanMethod = "11"
)

type timingsResponse struct {
	Data *struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// AladhanProvider implements PrayerTimesProvider using api.aladhan.com.
type AladhanProvider struct {
	client *upstream.Client
}

func NewAladhanProvider(baseURL string, timeout time.Duration) *AladhanProvider {
	if baseURL == "" {
		baseURL = DefaultAladhanBaseURL
	}
	return &AladhanProvider{client: upstream.NewClient(baseURL, timeout)}
}

func (a *AladhanProvider) GetTimings(ctx context.Context, at domain.Coordinates) (_ map[string]string, err error) {
	defer obs.Time(ctx, "aladhan.GetTimings")(&err)

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	q.Set("method", aladhanMethod)

	var resp timingsResponse
	if err := a.client.GetJSON(ctx, "/v1/timings", q, &resp); err != nil {
		return nil, err
	}

	if resp.Data == nil || len(resp.Data.Timings) == 0 {
		return nil, fmt.Errorf("%w: aladhan response has no timings", domain.ErrProviderUnavailable)
	}

	return resp.Data.Timings, nil
}
