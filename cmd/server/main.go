package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aafham/Masjid-hunt/internal/adapters/cache"
	"github.com/aafham/Masjid-hunt/internal/adapters/distance"
	"github.com/aafham/Masjid-hunt/internal/adapters/places"
	"github.com/aafham/Masjid-hunt/internal/adapters/prayer"
	"github.com/aafham/Masjid-hunt/internal/adapters/repositories"
	"github.com/aafham/Masjid-hunt/internal/api"
	"github.com/aafham/Masjid-hunt/internal/config"
	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/platform/db"
	"github.com/aafham/Masjid-hunt/internal/ports"
	"github.com/aafham/Masjid-hunt/internal/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis/gcache, Google, Elasticsearch) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()
	ctx := context.Background()

	conn, err := openDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Local runs seed on startup; Postgres is seeded by cmd/dbtool.
	if cfg.DatabaseURL == "" {
		if err := initAndSeed(conn, cfg); err != nil {
			log.Fatal(err)
		}
	}

	catalog, err := repositories.LoadCatalog(ctx, conn)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("catalog loaded stations=%d", len(catalog.ListStations("")))

	mosqueCache, prayerCache, closeCache, err := newCaches(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	search, err := newSearchProvider(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var matrix ports.DistanceMatrixProvider
	if cfg.MapsAPIKey != "" {
		m, err := distance.NewGoogleMatrixProvider(cfg.MapsAPIKey, "", cfg.UpstreamTimeout)
		if err != nil {
			log.Fatal(err)
		}
		matrix = m
	} else {
		log.Println("GOOGLE_MAPS_API_KEY not set: distances use haversine estimates")
	}

	finder := services.NewMosqueFinder(
		catalog,
		mosqueCache,
		search,
		matrix,
		services.NewFallbackResolver(catalog),
		cfg.MosqueCacheTTL,
	)
	// One search plus up to two matrix chunks.
	finder.ResolveTimeout = 3 * cfg.UpstreamTimeout
	prayerSvc := services.NewPrayerTimesService(
		prayer.NewAladhanProvider("", cfg.UpstreamTimeout),
		prayerCache,
		services.DefaultPrayerCacheTTL,
	)

	router := api.NewRouter(api.Deps{
		Stations:   catalog,
		Locator:    services.NewStationLocator(catalog.ListStations("")),
		Finder:     finder,
		Prayer:     prayerSvc,
		MapsAPIKey: cfg.MapsAPIKey,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Covers one search plus one chunked matrix call at UpstreamTimeout each.
		WriteTimeout: 3*cfg.UpstreamTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := listenAndServe(srv); err != nil {
		log.Fatal(err)
	}
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	if cfg.DatabaseURL != "" {
		return db.Open("pgx", cfg.DatabaseURL)
	}
	return db.Open("sqlite", cfg.DBPath)
}

func initAndSeed(conn *sqlx.DB, cfg config.Config) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(conn, cfg.StationsSeedPath, cfg.FallbackSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// newCaches returns Redis-backed caches when REDIS_ADDR is set, otherwise
// in-process ones.
func newCaches(ctx context.Context, cfg config.Config) (
	ports.Cache[domain.CachedMosques],
	ports.Cache[domain.PrayerTimes],
	func(),
	error,
) {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache[domain.CachedMosques](nil),
			cache.NewMemoryCache[domain.PrayerTimes](nil),
			func() {},
			nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Printf("using redis cache addr=%s", cfg.RedisAddr)

	return cache.NewRedisCache[domain.CachedMosques](client, "masjid-hunt:"),
		cache.NewRedisCache[domain.PrayerTimes](client, "masjid-hunt:"),
		func() { _ = client.Close() },
		nil
}

// newSearchProvider returns nil when no search backend is configured, which
// sends every lookup to the fallback dataset.
func newSearchProvider(cfg config.Config) (ports.NearbySearchProvider, error) {
	switch cfg.SearchProvider {
	case "elasticsearch":
		if cfg.ElasticsearchURL == "" {
			log.Println("ELASTICSEARCH_URL not set: mosque search uses the fallback dataset")
			return nil, nil
		}
		client, err := places.NewElasticClient(cfg.ElasticsearchURL, cfg.UpstreamTimeout)
		if err != nil {
			return nil, err
		}
		return places.NewElasticPlacesProvider(client, cfg.ElasticsearchIndex), nil

	case "google", "":
		if cfg.PlacesAPIKey == "" {
			log.Println("GOOGLE_PLACES_API_KEY not set: mosque search uses the fallback dataset")
			return nil, nil
		}
		return places.NewGooglePlacesProvider(cfg.PlacesAPIKey, "", cfg.UpstreamTimeout)

	default:
		return nil, fmt.Errorf("unknown SEARCH_PROVIDER %q (want google or elasticsearch)", cfg.SearchProvider)
	}
}

// listenAndServe blocks until the server fails or SIGINT/SIGTERM arrives,
// then drains in-flight requests.
func listenAndServe(srv *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening addr=%s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		log.Printf("Received %s, shutting down...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
