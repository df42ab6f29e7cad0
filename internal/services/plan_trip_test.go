package services

import (
	"context"
	"testing"

	"fuelroute-service/internal/adapters/geo"
	"fuelroute-service/internal/adapters/repositories"
	"fuelroute-service/internal/domain"
	"fuelroute-service/internal/ports"

	"github.com/stretchr/testify/require"
)

const milesInMeters = 1609.344

func TestPlanTripSingleTank(t *testing.T) {
	points := meridianRoute(35, 40)
	total := cumulativeMiles(points)[len(points)-1]

	geocoder := &geo.MockGeocoder{Places: map[string]domain.Coordinates{
		"Amarillo, TX":      {Lon: 0, Lat: 35},
		"Oklahoma City, OK": {Lon: 0, Lat: 40},
	}}
	routes := &geo.MockRouteProvider{Result: ports.RouteResult{
		Points:          points,
		DistanceMeters:  300 * milesInMeters,
		DurationSeconds: 18000,
	}}
	repo := repositories.NewMemoryStationRepository([]domain.Station{
		stationAt("roadside", 0.01, 37, 3.00),
	})

	plan, err := PlanTrip(context.Background(), PlanTripRequest{
		StartLocation: "Amarillo, TX",
		EndLocation:   "Oklahoma City, OK",
		Profile:       testProfile(),
	}, geocoder, routes, repo)
	require.NoError(t, err)

	require.Empty(t, plan.Stops)

	// Distances come from the geometry, not the provider's reported meters
	// (the mock deliberately reports a shorter trip).
	require.InDelta(t, total, plan.TotalMiles, 1e-9)
	require.InDelta(t, total/10, plan.TotalGallons, 1e-9)
	require.InDelta(t, 0, plan.TotalCost, 1e-9)
	require.Equal(t, points, plan.Points)
	require.Equal(t, 1, routes.Calls)
}

func TestPlanTripUnknownLocation(t *testing.T) {
	geocoder := &geo.MockGeocoder{Places: map[string]domain.Coordinates{}}
	routes := &geo.MockRouteProvider{}
	repo := repositories.NewMemoryStationRepository(nil)

	_, err := PlanTrip(context.Background(), PlanTripRequest{
		StartLocation: "Nowhere, ZZ",
		EndLocation:   "Elsewhere, ZZ",
		Profile:       testProfile(),
	}, geocoder, routes, repo)
	require.ErrorIs(t, err, domain.ErrInvalidLocation)
	require.Equal(t, 0, routes.Calls)
}

func TestPlanTripRequiresLocations(t *testing.T) {
	_, err := PlanTrip(context.Background(), PlanTripRequest{Profile: testProfile()},
		&geo.MockGeocoder{}, &geo.MockRouteProvider{}, repositories.NewMemoryStationRepository(nil))
	require.Error(t, err)
}

func TestPlanTripNoStationsOnLongRoute(t *testing.T) {
	points := meridianRoute(30, 48)

	geocoder := &geo.MockGeocoder{Places: map[string]domain.Coordinates{
		"A": {Lon: 0, Lat: 30},
		"B": {Lon: 0, Lat: 48},
	}}
	routes := &geo.MockRouteProvider{Result: ports.RouteResult{
		Points:          points,
		DistanceMeters:  1200 * milesInMeters,
		DurationSeconds: 70000,
	}}
	repo := repositories.NewMemoryStationRepository(nil)

	_, err := PlanTrip(context.Background(), PlanTripRequest{
		StartLocation: "A",
		EndLocation:   "B",
		Profile:       testProfile(),
	}, geocoder, routes, repo)
	require.ErrorIs(t, err, domain.ErrNoStationsNearRoute)
}
