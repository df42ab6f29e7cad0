package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fuelroute-service/internal/domain"
	"fuelroute-service/internal/platform/obs"
)

// Postgres-backed implementation of the StationRepository port, for
// deployments that share one catalog across instances.
type PgStationRepository struct{ DB *sql.DB }

func NewPgStationRepository(db *sql.DB) *PgStationRepository {
	return &PgStationRepository{DB: db}
}

// Return all stations stored in the database.
func (s *PgStationRepository) ListStations(ctx context.Context) (_ []domain.Station, err error) {
	defer obs.Time(ctx, "stations.pg.ListStations")(&err)

	if s.DB == nil {
		return nil, errors.New("pg station repository: DB is nil")
	}

	query := `
	SELECT
		name,
		address,
		lon,
		lat,
		price_per_gallon
	FROM stations
	ORDER BY station_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stations: query stations table: %w", err)
	}
	defer rows.Close()

	stations := make([]domain.Station, 0, 64)
	for rows.Next() {
		var st domain.Station
		if err := rows.Scan(&st.Name, &st.Address, &st.Coord.Lon, &st.Coord.Lat, &st.PricePerGallon); err != nil {
			return nil, fmt.Errorf("list stations: scan row: %w", err)
		}
		stations = append(stations, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stations: row iteration: %w", err)
	}

	return stations, nil
}
