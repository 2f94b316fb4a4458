package places

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aafham/Masjid-hunt/internal/domain"
)

func TestElasticSearchNearby(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/mosques/_search") {
			t.Errorf("path = %q", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if !strings.Contains(string(body), `"distance":"2000m"`) {
			t.Errorf("request body missing distance filter: %s", body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"took":1,"timed_out":false,"hits":{"total":{"value":2,"relation":"eq"},"hits":[
			{"_index":"mosques","_id":"m1","_source":{"name":"Masjid Negara","address":"Jalan Perdana","category":"mosque","location":{"lat":3.1421,"lon":101.6916}}},
			{"_index":"mosques","_id":"m2","_source":{"name":"Masjid Jamek","category":"mosque","location":{"lat":3.1488,"lon":101.6958}}}
		]}}`))
	}))
	defer srv.Close()

	client, err := NewElasticClient(srv.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	p := NewElasticPlacesProvider(client, "mosques")

	got, err := p.SearchNearby(context.Background(), klSentral, 2000, "mosque")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].PlaceID != "m1" || got[0].Coordinates.Lon != 101.6916 || got[0].Address != "Jalan Perdana" {
		t.Errorf("candidate 0 = %+v", got[0])
	}
}

func TestElasticSearchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"type":"cluster_block_exception","reason":"blocked"},"status":503}`))
	}))
	defer srv.Close()

	client, _ := NewElasticClient(srv.URL, time.Second)
	_, err := NewElasticPlacesProvider(client, "mosques").SearchNearby(context.Background(), klSentral, 1000, "mosque")
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestNewElasticClientRequiresURL(t *testing.T) {
	if _, err := NewElasticClient("", time.Second); err == nil {
		t.Fatal("expected error for empty url")
	}
}
