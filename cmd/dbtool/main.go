package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/aafham/Masjid-hunt/internal/adapters/places"
	"github.com/aafham/Masjid-hunt/internal/adapters/repositories"
	"github.com/aafham/Masjid-hunt/internal/config"
	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/platform/db"
	"github.com/aafham/Masjid-hunt/internal/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
)

// dbtool prepares shared infrastructure: it creates and seeds the Postgres
// reference tables and, with -elastic, loads the seeded mosques into the
// Elasticsearch index used by SEARCH_PROVIDER=elasticsearch.
func main() {
	indexElastic := flag.Bool("elastic", false, "also index fallback mosques into Elasticsearch")
	skipSQL := flag.Bool("skip-sql", false, "skip the Postgres schema and seed step")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	if !*skipSQL {
		if cfg.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is required")
		}

		conn, err := db.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		if err := initAndSeed(conn, cfg); err != nil {
			log.Fatal(err)
		}
	}

	if *indexElastic {
		if err := indexFallbackMosques(cfg); err != nil {
			log.Fatal(err)
		}
	}
}

func initAndSeed(conn *sqlx.DB, cfg config.Config) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(conn, cfg.StationsSeedPath, cfg.FallbackSeedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}

// indexFallbackMosques pushes every seeded mosque, deduplicated by place id,
// into the Elasticsearch index.
func indexFallbackMosques(cfg config.Config) error {
	if cfg.ElasticsearchURL == "" {
		return errors.New("ELASTICSEARCH_URL is required with -elastic")
	}

	seeds, err := repositories.ReadFallbackSeeds(cfg.FallbackSeedPath)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	var mosques []domain.Mosque
	for _, list := range seeds {
		for _, s := range list {
			if seen[s.PlaceID] {
				continue
			}
			seen[s.PlaceID] = true
			mosques = append(mosques, domain.Mosque{
				PlaceID: s.PlaceID,
				Name:    s.Name,
				Lat:     s.Lat,
				Lng:     s.Lng,
				Address: s.Address,
			})
		}
	}

	client, err := places.NewElasticClient(cfg.ElasticsearchURL, cfg.UpstreamTimeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := places.EnsureIndex(ctx, client, cfg.ElasticsearchIndex); err != nil {
		return err
	}
	if err := places.IndexMosques(ctx, client, cfg.ElasticsearchIndex, services.MosqueCategory, mosques); err != nil {
		return err
	}

	log.Printf("Indexed mosques=%d index=%s", len(mosques), cfg.ElasticsearchIndex)
	return nil
}
