package ports

import (
	"context"
	"fuelroute-service/internal/domain"
)

// Contract for resolving a free-text place name to coordinates.
type Geocoder interface {
	// Resolve a place name. Fails with domain.ErrInvalidLocation when the
	// name cannot be resolved.
	Geocode(ctx context.Context, place string) (domain.Coordinates, error)
}
