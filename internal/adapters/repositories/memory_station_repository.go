package repositories

import (
	"context"

	"fuelroute-service/internal/domain"
)

// MemoryStationRepository serves a fixed in-memory catalog. Used in tests and
// wherever the catalog has already been loaded elsewhere.
type MemoryStationRepository struct {
	Stations []domain.Station
}

func NewMemoryStationRepository(stations []domain.Station) *MemoryStationRepository {
	return &MemoryStationRepository{Stations: stations}
}

func (r *MemoryStationRepository) ListStations(ctx context.Context) ([]domain.Station, error) {
	return r.Stations, nil
}
