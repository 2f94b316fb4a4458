package distance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/platform/obs"
	"github.com/aafham/Masjid-hunt/internal/platform/upstream"
	"github.com/aafham/Masjid-hunt/internal/ports"
)

const (
	DefaultGoogleBaseURL = "https://maps.googleapis.com"

	// Google rejects matrix requests with more than 25 destinations.
	maxDestinationsPerRequest = 25
)

type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance *struct {
				Value *float64 `json:"value"`
			} `json:"distance"`
			Duration *struct {
				Value *float64 `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// GoogleMatrixProvider implements DistanceMatrixProvider using the Google
// Distance Matrix API in walking mode.
//
// The provider is safe for concurrent use.
type GoogleMatrixProvider struct {
	client *upstream.Client
	apiKey string
	mode   string
}

func NewGoogleMatrixProvider(apiKey, baseURL string, timeout time.Duration) (*GoogleMatrixProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google matrix api key is empty")
	}
	if baseURL == "" {
		baseURL = DefaultGoogleBaseURL
	}

	return &GoogleMatrixProvider{
		client: upstream.NewClient(baseURL, timeout),
		apiKey: apiKey,
		mode:   "walking",
	}, nil
}

// Compute walking distances from a single origin to many destinations.
// Destinations are sent in chunks; a failed chunk fails the whole batch.
func (g *GoogleMatrixProvider) GetDistances(
	ctx context.Context,
	origin domain.Coordinates,
	destinations []domain.Coordinates,
) (_ []ports.MatrixElement, err error) {
	defer obs.Time(ctx, "google.matrix.GetDistances")(&err)

	if len(destinations) == 0 {
		return []ports.MatrixElement{}, nil
	}

	out := make([]ports.MatrixElement, 0, len(destinations))
	for start := 0; start < len(destinations); start += maxDestinationsPerRequest {
		end := min(start+maxDestinationsPerRequest, len(destinations))

		row, err := g.fetchMatrixRow(ctx, origin, destinations[start:end])
		if err != nil {
			return nil, fmt.Errorf("fetching matrix row [%d:%d]: %w", start, end, err)
		}
		out = append(out, row...)
	}

	return out, nil
}

// fetchMatrixRow retrieves distance and duration from one origin to a chunk
// of destinations. Elements are returned in destination order.
func (g *GoogleMatrixProvider) fetchMatrixRow(
	ctx context.Context,
	origin domain.Coordinates,
	destinations []domain.Coordinates,
) ([]ports.MatrixElement, error) {
	dests := make([]string, 0, len(destinations))
	for _, d := range destinations {
		dests = append(dests, d.LatLng())
	}

	q := url.Values{}
	q.Set("origins", origin.LatLng())
	q.Set("destinations", strings.Join(dests, "|"))
	q.Set("mode", g.mode)
	q.Set("key", g.apiKey)

	var mr matrixResponse
	if err := g.client.GetJSON(ctx, "/maps/api/distancematrix/json", q, &mr); err != nil {
		return nil, err
	}

	if mr.Status != "OK" {
		return nil, fmt.Errorf("%w: matrix status %s: %s", domain.ErrProviderUnavailable, mr.Status, mr.ErrorMessage)
	}
	if len(mr.Rows) != 1 {
		return nil, fmt.Errorf("%w: expected 1 origin row; got %d", domain.ErrProviderUnavailable, len(mr.Rows))
	}

	elements := mr.Rows[0].Elements
	out := make([]ports.MatrixElement, len(destinations))
	for i := range destinations {
		// Missing trailing elements are per-element failures, not batch failures.
		if i >= len(elements) {
			out[i] = ports.MatrixElement{OK: false, Status: "MISSING"}
			continue
		}

		el := elements[i]
		if el.Status != "OK" || el.Distance == nil || el.Distance.Value == nil {
			out[i] = ports.MatrixElement{OK: false, Status: el.Status}
			continue
		}

		// Google returns float metrics; round to nearest integer for domain consistency.
		res := ports.DistanceResult{DistanceMeters: int(math.Round(*el.Distance.Value))}
		if el.Duration != nil && el.Duration.Value != nil {
			res.DurationSeconds = int(math.Round(*el.Duration.Value))
		}
		out[i] = ports.MatrixElement{OK: true, Status: el.Status, Result: res}
	}

	return out, nil
}
