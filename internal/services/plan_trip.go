package services

import (
	"context"
	"errors"
	"fmt"
	"fuelroute-service/internal/domain"
	"fuelroute-service/internal/platform/obs"
	"fuelroute-service/internal/ports"

	"github.com/rs/zerolog/log"
)

type PlanTripRequest struct {
	StartLocation string
	EndLocation   string
	RadiusMiles   float64
	Profile       domain.VehicleProfile
}

// PlanTrip orchestrates one trip computation: geocode both endpoints, fetch a
// single route, project the station catalog onto it, select cost-minimizing
// stops, and assemble the plan. Any failure aborts the whole request; there
// are no partial plans.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	geocoder ports.Geocoder,
	routes ports.RouteProvider,
	repo ports.StationRepository,
) (_ domain.TripPlan, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	if req.StartLocation == "" || req.EndLocation == "" {
		return domain.TripPlan{}, errors.New("plan trip: start and end locations must be non-empty")
	}

	radius := req.RadiusMiles
	if radius <= 0 {
		radius = DefaultProximityRadiusMiles
	}

	origin, err := geocoder.Geocode(ctx, req.StartLocation)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("plan trip: geocode start %q: %w", req.StartLocation, err)
	}

	destination, err := geocoder.Geocode(ctx, req.EndLocation)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("plan trip: geocode end %q: %w", req.EndLocation, err)
	}

	// Exactly one routing call per request.
	route, err := routes.Route(ctx, origin, destination)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("plan trip: route %q -> %q: %w", req.StartLocation, req.EndLocation, err)
	}
	if len(route.Points) < 2 {
		return domain.TripPlan{}, fmt.Errorf("plan trip: %w: route has %d points", domain.ErrUpstream, len(route.Points))
	}

	// Total distance is measured on the returned geometry so stop positions
	// and the trip total share one distance axis.
	cum := cumulativeMiles(route.Points)
	totalMiles := cum[len(cum)-1]
	log.Debug().
		Float64("geometry_miles", totalMiles).
		Float64("reported_miles", domain.MetersToMiles(route.DistanceMeters)).
		Msg("route distance")

	stations, err := repo.ListStations(ctx)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("plan trip: list stations: %w", err)
	}

	projected, err := ProjectStations(stations, route.Points, totalMiles, radius, req.Profile)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("plan trip: %w", err)
	}

	stops, err := SelectStops(projected, totalMiles, req.Profile)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("plan trip: %w", err)
	}

	plan, err := AssembleTripPlan(route.Points, totalMiles, route.DurationSeconds, stops, req.Profile)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("plan trip: %w", err)
	}

	return plan, nil
}
