package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Open opens and pings a database. driver is "pgx" for Postgres (DATABASE_URL)
// or "sqlite" for a local file. Queries are written with "?" placeholders and
// passed through Rebind, so both drivers share one set of statements.
func Open(driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("openDB: open %s database: %w", driver, err)
	}

	if driver == "pgx" {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
	} else {
		// SQLite allows a single writer; ":memory:" also needs one shared connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("openDB: verify %s connection: %w", driver, err)
	}

	return db, nil
}
