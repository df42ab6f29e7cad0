package ports

import (
	"context"
	"fuelroute-service/internal/domain"
)

// A single driving route between two coordinates.
type RouteResult struct {
	// Polyline in travel order.
	Points          []domain.Coordinates
	DistanceMeters  float64
	DurationSeconds float64
}

// Contract for retrieving one route between two coordinates.
// Implementations make exactly one routing call per invocation:
// no retries of the route itself, no alternate routes.
type RouteProvider interface {
	Route(ctx context.Context, origin, destination domain.Coordinates) (RouteResult, error)
}
