package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"fuelroute-service/internal/adapters/cache"
	"fuelroute-service/internal/adapters/geo"
	"fuelroute-service/internal/adapters/repositories"
	"fuelroute-service/internal/api"
	"fuelroute-service/internal/config"
	"fuelroute-service/internal/domain"
	"fuelroute-service/internal/platform/db"
	"fuelroute-service/internal/ports"
	"fuelroute-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Redis, LocationIQ, OSRM)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found (using environment variables)")
	}
	config.InitLogging()

	dbPath := config.Get("DB_PATH", "data/app.db")
	csvPath := config.Get("STATIONS_CSV", "data/fuel-prices.csv")
	port := config.Get("PORT", "8080")

	geocodeKey := os.Getenv("LOCATIONIQ_KEY")
	if strings.TrimSpace(geocodeKey) == "" {
		log.Fatal().Msg("LOCATIONIQ_KEY is required")
	}

	profile := domain.VehicleProfile{
		MaxRangeMiles:  config.GetFloat("MAX_RANGE_MILES", 500),
		MilesPerGallon: config.GetFloat("MPG", 10),
	}
	radius := config.GetFloat("STATION_RADIUS_MILES", services.DefaultProximityRadiusMiles)

	// Storage backend: Postgres when DATABASE_URL is set (schema and catalog
	// managed by dbtool), local SQLite seeded from the CSV otherwise.
	var (
		geocodeCache geo.GeocodeCache
		repo         ports.StationRepository
	)
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("open postgres database")
		}
		defer pg.Close()

		geocodeCache = cache.NewPgGeocodeCache(pg)
		repo = repositories.NewPgStationRepository(pg)
	} else {
		sqliteDB, err := openDB(dbPath)
		if err != nil {
			log.Fatal().Err(err).Msg("open database")
		}
		defer sqliteDB.Close()

		// The station catalog is loaded once at startup and read-only afterwards.
		if err := initAndSeed(sqliteDB, csvPath); err != nil {
			log.Fatal().Err(err).Msg("initialize station catalog")
		}

		geocodeCache = cache.NewSqliteGeocodeCache(sqliteDB)
		repo = repositories.NewSqliteStationRepository(sqliteDB)
	}

	// Geocode results are cached persistently; repeated endpoints skip the
	// external call entirely.
	geocoder, err := geo.NewLocationIQGeocoder(geocodeKey, geocodeCache)
	if err != nil {
		log.Fatal().Err(err).Msg("create geocoder")
	}

	// Route caching through Redis is optional; without REDIS_ADDR every
	// request hits OSRM directly.
	var routeCache geo.RouteCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		routeCache = cache.NewRedisRouteCache(client, config.GetDuration("ROUTE_CACHE_TTL", 24*time.Hour))
	}
	routeProvider := geo.NewOSRMRouteProvider(routeCache)

	router := api.NewRouter(repo, geocoder, routeProvider, profile, radius)

	// Timeouts are tuned for cold-cache planning (two geocodes plus one
	// routing call against public services).
	log.Info().Str("addr", ":"+port).Msg("server listening")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, csvPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromCSV(db, csvPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
