package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "GOOGLE_MAPS_API_KEY", "GOOGLE_PLACES_API_KEY", "MOSQUE_CACHE_TTL", "SEARCH_PROVIDER"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.PlacesAPIKey != "" || cfg.MapsAPIKey != "" {
		t.Errorf("expected no credentials, got places=%q maps=%q", cfg.PlacesAPIKey, cfg.MapsAPIKey)
	}
	if cfg.MosqueCacheTTL != 10*time.Minute {
		t.Errorf("MosqueCacheTTL = %s, want 10m", cfg.MosqueCacheTTL)
	}
	if cfg.SearchProvider != "google" {
		t.Errorf("SearchProvider = %q, want google", cfg.SearchProvider)
	}
}

func TestPlacesKeyFallsBackToMapsKey(t *testing.T) {
	t.Setenv("GOOGLE_PLACES_API_KEY", "")
	t.Setenv("GOOGLE_MAPS_API_KEY", "maps-key")

	cfg := Load()
	if cfg.PlacesAPIKey != "maps-key" {
		t.Fatalf("PlacesAPIKey = %q, want maps-key", cfg.PlacesAPIKey)
	}
}

func TestGetDurationInvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_TTL", "soon")
	if got := GetDuration("SOME_TTL", time.Minute); got != time.Minute {
		t.Fatalf("GetDuration = %s, want 1m", got)
	}
}
