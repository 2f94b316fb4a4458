package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetDuration parses a time.Duration environment value ("10m", "5s").
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("config: invalid duration key=%s value=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

// Config holds process-wide settings for the HTTP server.
type Config struct {
	Port             string
	DBPath           string
	DatabaseURL      string
	StationsSeedPath string
	FallbackSeedPath string

	// Search credential: Places key, else the generic Maps key.
	PlacesAPIKey string
	// Matrix and map-embed credential.
	MapsAPIKey string

	SearchProvider     string
	ElasticsearchURL   string
	ElasticsearchIndex string

	RedisAddr     string
	RedisPassword string

	MosqueCacheTTL  time.Duration
	UpstreamTimeout time.Duration
}

// Load reads Config from the environment.
func Load() Config {
	mapsKey := Get("GOOGLE_MAPS_API_KEY", "")

	return Config{
		Port:               Get("PORT", "8080"),
		DBPath:             Get("DB_PATH", "data/app.db"),
		DatabaseURL:        Get("DATABASE_URL", ""),
		StationsSeedPath:   Get("STATIONS_SEED_PATH", "data/seeds/stations.json"),
		FallbackSeedPath:   Get("FALLBACK_SEED_PATH", "data/seeds/fallback_mosques.json"),
		PlacesAPIKey:       Get("GOOGLE_PLACES_API_KEY", mapsKey),
		MapsAPIKey:         mapsKey,
		SearchProvider:     strings.ToLower(Get("SEARCH_PROVIDER", "google")),
		ElasticsearchURL:   Get("ELASTICSEARCH_URL", ""),
		ElasticsearchIndex: Get("ELASTICSEARCH_INDEX", "mosques"),
		RedisAddr:          Get("REDIS_ADDR", ""),
		RedisPassword:      Get("REDIS_PASSWORD", ""),
		MosqueCacheTTL:     GetDuration("MOSQUE_CACHE_TTL", 10*time.Minute),
		UpstreamTimeout:    GetDuration("UPSTREAM_TIMEOUT", 10*time.Second),
	}
}
