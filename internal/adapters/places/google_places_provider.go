package places

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/platform/obs"
	"github.com/aafham/Masjid-hunt/internal/platform/upstream"
	"github.com/aafham/Masjid-hunt/internal/ports"
)

const DefaultGoogleBaseURL = "https://maps.googleapis.com"

type nearbySearchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		PlaceID          string `json:"place_id"`
		Name             string `json:"name"`
		Vicinity         string `json:"vicinity"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         *struct {
			Location *struct {
				Lat *float64 `json:"lat"`
				Lng *float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// GooglePlacesProvider implements NearbySearchProvider using the Google
// Places Nearby Search API.
type GooglePlacesProvider struct {
	client *upstream.Client
	apiKey string
}

func NewGooglePlacesProvider(apiKey, baseURL string, timeout time.Duration) (*GooglePlacesProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google places api key is empty")
	}
	if baseURL == "" {
		baseURL = DefaultGoogleBaseURL
	}

	return &GooglePlacesProvider{
		client: upstream.NewClient(baseURL, timeout),
		apiKey: apiKey,
	}, nil
}

// SearchNearby returns places of the given type within radiusMeters.
// ZERO_RESULTS is a successful empty answer; any other non-OK status fails.
func (g *GooglePlacesProvider) SearchNearby(
	ctx context.Context,
	origin domain.Coordinates,
	radiusMeters int,
	category string,
) (_ []ports.PlaceCandidate, err error) {
	defer obs.Time(ctx, "google.places.SearchNearby")(&err)

	q := url.Values{}
	q.Set("location", origin.LatLng())
	q.Set("radius", strconv.Itoa(radiusMeters))
	q.Set("type", category)
	q.Set("key", g.apiKey)

	var resp nearbySearchResponse
	if err := g.client.GetJSON(ctx, "/maps/api/place/nearbysearch/json", q, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case "OK", "ZERO_RESULTS":
	default:
		return nil, fmt.Errorf("%w: places status %s: %s", domain.ErrProviderUnavailable, resp.Status, resp.ErrorMessage)
	}

	out := make([]ports.PlaceCandidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		c := ports.PlaceCandidate{
			PlaceID: r.PlaceID,
			Name:    r.Name,
			Address: r.Vicinity,
		}
		if c.Address == "" {
			c.Address = r.FormattedAddress
		}
		// Missing geometry stays zero and is filtered by the caller.
		if r.Geometry != nil && r.Geometry.Location != nil {
			if r.Geometry.Location.Lat != nil {
				c.Coordinates.Lat = *r.Geometry.Location.Lat
			}
			if r.Geometry.Location.Lng != nil {
				c.Coordinates.Lon = *r.Geometry.Location.Lng
			}
		}
		out = append(out, c)
	}

	return out, nil
}
