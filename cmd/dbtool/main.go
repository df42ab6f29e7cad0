package main

import (
	"os"
	"strings"

	"fuelroute-service/internal/adapters/repositories"
	"fuelroute-service/internal/config"
	"fuelroute-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// dbtool initializes the shared Postgres schema and imports the station price
// file, for deployments that back the service with Postgres instead of the
// embedded SQLite store.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found (using environment variables)")
	}
	config.InitLogging()

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open postgres")
	}
	defer conn.Close()

	log.Info().Msg("Initializing database schema...")
	if err := repositories.InitPgSchema(conn); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}
	log.Info().Msg("Schema ready.")

	csvPath := config.Get("STATIONS_CSV", "data/fuel-prices.csv")
	log.Info().Str("path", csvPath).Msg("Importing stations...")
	if err := repositories.ImportStationsCSV(conn, csvPath); err != nil {
		log.Fatal().Err(err).Msg("station import failed")
	}
	log.Info().Msg("Import complete.")
}
