package ports

import (
	"context"
	"fuelroute-service/internal/domain"
)

// Port: a boundary for retrieving the priced station catalog.
type StationRepository interface {
	// Retrieve all stations available as refueling candidates.
	ListStations(ctx context.Context) ([]domain.Station, error)
}
