package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aafham/Masjid-hunt/internal/domain"
)

func TestGetJSONDecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "1" {
			t.Errorf("query q = %q, want 1", r.URL.Query().Get("q"))
		}
		w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	var out struct {
		Status string `json:"status"`
	}
	c := NewClient(srv.URL, time.Second)
	if err := c.GetJSON(context.Background(), "/x", url.Values{"q": {"1"}}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != "OK" {
		t.Fatalf("status = %q, want OK", out.Status)
	}
}

func TestGetJSONNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	var out map[string]any
	err := NewClient(srv.URL, time.Second).GetJSON(context.Background(), "/x", nil, &out)
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}

	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusTooManyRequests {
		t.Fatalf("err = %v, want StatusError 429", err)
	}
}

func TestGetJSONMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	var out map[string]any
	err := NewClient(srv.URL, time.Second).GetJSON(context.Background(), "/x", nil, &out)
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestGetJSONTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	var out map[string]any
	err := NewClient(srv.URL, 20*time.Millisecond).GetJSON(context.Background(), "/x", nil, &out)
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestGetJSONTransportErrorHidesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	q := url.Values{}
	q.Set("key", "secret-key")

	var out map[string]any
	err := NewClient(srv.URL, 20*time.Millisecond).GetJSON(context.Background(), "/x", q, &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Fatalf("error leaks query string: %v", err)
	}
}
