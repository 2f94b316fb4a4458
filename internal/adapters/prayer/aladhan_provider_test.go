package prayer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aafham/Masjid-hunt/internal/domain"
)

func TestAladhanGetTimings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/timings" || r.URL.Query().Get("method") != "11" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		w.Write([]byte(`{"code":200,"data":{"timings":{"Fajr":"05:58 (+08)","Dhuhr":"13:12","Asr":"16:20","Maghrib":"19:18","Isha":"20:30"}}}`))
	}))
	defer srv.Close()

	got, err := NewAladhanProvider(srv.URL, time.Second).GetTimings(context.Background(), domain.Coordinates{Lat: 3.1347, Lon: 101.6869})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["Fajr"] != "05:58 (+08)" {
		t.Fatalf("Fajr = %q", got["Fajr"])
	}
}

func TestAladhanMissingTimings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":200,"data":{}}`))
	}))
	defer srv.Close()

	_, err := NewAladhanProvider(srv.URL, time.Second).GetTimings(context.Background(), domain.Coordinates{Lat: 3.1, Lon: 101.6})
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}
