package geo

import (
	"context"
	"fmt"

	"fuelroute-service/internal/domain"
	"fuelroute-service/internal/ports"
)

// MockGeocoder resolves places from a fixed map. Unknown places fail with
// domain.ErrInvalidLocation, mirroring the real adapter.
type MockGeocoder struct {
	Places map[string]domain.Coordinates
}

func (m *MockGeocoder) Geocode(ctx context.Context, place string) (domain.Coordinates, error) {
	c, ok := m.Places[place]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("mock geocode: %w: %q", domain.ErrInvalidLocation, place)
	}
	return c, nil
}

// MockRouteProvider returns a fixed route result or error.
type MockRouteProvider struct {
	Result ports.RouteResult
	Err    error
	Calls  int
}

func (m *MockRouteProvider) Route(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteResult, error) {
	m.Calls++
	if m.Err != nil {
		return ports.RouteResult{}, m.Err
	}
	return m.Result, nil
}
