package services

import (
	"fmt"
	"fuelroute-service/internal/domain"
)

// AssembleTripPlan packages geometry, stops, and totals into the final plan.
// Aggregation only, no planning logic; fails when inputs are internally
// inconsistent.
func AssembleTripPlan(
	points []domain.Coordinates,
	totalMiles float64,
	durationSeconds float64,
	stops []domain.FuelStop,
	profile domain.VehicleProfile,
) (domain.TripPlan, error) {
	if totalMiles < 0 {
		return domain.TripPlan{}, fmt.Errorf("assemble trip plan: negative total distance %.1f", totalMiles)
	}
	if durationSeconds < 0 {
		return domain.TripPlan{}, fmt.Errorf("assemble trip plan: negative duration %.1f", durationSeconds)
	}

	totalCost := 0.0
	for _, s := range stops {
		totalCost += s.Cost
	}

	return domain.TripPlan{
		Points:          points,
		TotalMiles:      totalMiles,
		DurationSeconds: durationSeconds,
		Stops:           stops,
		TotalGallons:    profile.GallonsFor(totalMiles),
		TotalCost:       totalCost,
	}, nil
}
