package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitPgSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init pg schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init pg schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS stations (
			station_id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			lon DOUBLE PRECISION NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			price_per_gallon DOUBLE PRECISION NOT NULL,
			UNIQUE (name, address)
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS geocode_cache (
			place TEXT PRIMARY KEY,
			lon DOUBLE PRECISION NOT NULL,
			lat DOUBLE PRECISION NOT NULL
		);
		`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init pg schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init pg schema: commit tx: %w", err)
	}

	return nil
}

// Import the stations from a delimited price file into Postgres.
func ImportStationsCSV(db *sql.DB, csvPath string) error {
	stations, err := LoadStationsCSV(csvPath)
	if err != nil {
		return fmt.Errorf("import stations: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("import stations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO stations (name, address, lon, lat, price_per_gallon)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (name, address) DO UPDATE
	SET lon = EXCLUDED.lon,
		lat = EXCLUDED.lat,
		price_per_gallon = EXCLUDED.price_per_gallon;
	`)
	if err != nil {
		return fmt.Errorf("import stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range stations {
		if _, err := stmt.Exec(s.Name, s.Address, s.Coord.Lon, s.Coord.Lat, s.PricePerGallon); err != nil {
			return fmt.Errorf("import stations: insert station %q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import stations: commit tx: %w", err)
	}

	return nil
}

