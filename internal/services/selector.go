package services

import (
	"fmt"
	"fuelroute-service/internal/domain"
)

// SelectStops chooses refueling stops along the route, minimizing total fuel
// cost while guaranteeing the vehicle never runs dry.
//
// Greedy forward scan over the distance axis: while the destination is out of
// range, pick the cheapest not-yet-visited station inside the current
// reachable window. Price alone is not enough. A cheap station close by can
// strand the vehicle, so a candidate is viable only if, topped off there, its
// new full-range window contains the destination or another station. Ties on
// price go to the farthest station, which delays the next mandatory stop.
//
// Purchase accounting: at each chosen stop the vehicle buys exactly the fuel
// needed to reach the next chosen stop or the destination, net of fuel still
// on board. A stop whose required purchase works out to zero is dropped from
// the plan. Replaying the returned stops therefore never drives the fuel
// level negative.
//
// Pure function; identical inputs yield identical output.
//
// Fails with domain.ErrInfeasibleRoute, naming where the gap starts, when no
// viable station bridges the remaining distance.
func SelectStops(
	stations []domain.ProjectedStation,
	totalMiles float64,
	profile domain.VehicleProfile,
) ([]domain.FuelStop, error) {
	if totalMiles < 0 {
		return nil, fmt.Errorf("select stops: total distance must be non-negative, got %.1f", totalMiles)
	}

	// Trip fits in the starting tank.
	if totalMiles <= profile.MaxRangeMiles {
		return []domain.FuelStop{}, nil
	}

	visited := make([]bool, len(stations))
	chosen := make([]int, 0, 4)
	pos := 0.0

	for pos+profile.MaxRangeMiles < totalMiles {
		best := -1
		farthest := -1

		for i, s := range stations {
			if visited[i] || s.MilesAlongRoute <= pos || s.MilesAlongRoute > pos+profile.MaxRangeMiles {
				continue
			}

			if farthest == -1 || s.MilesAlongRoute > stations[farthest].MilesAlongRoute {
				farthest = i
			}

			if !canContinueFrom(stations, visited, i, s.MilesAlongRoute, totalMiles, profile.MaxRangeMiles) {
				continue
			}

			if best == -1 ||
				s.PricePerGallon < stations[best].PricePerGallon ||
				(s.PricePerGallon == stations[best].PricePerGallon && s.MilesAlongRoute > stations[best].MilesAlongRoute) {
				best = i
			}
		}

		if best == -1 {
			gapStart := pos
			if farthest != -1 {
				// Stations exist in the window, but none can reach onward.
				gapStart = stations[farthest].MilesAlongRoute
			}
			return nil, fmt.Errorf(
				"select stops: %w: no station reachable beyond mile %.1f",
				domain.ErrInfeasibleRoute, gapStart,
			)
		}

		visited[best] = true
		chosen = append(chosen, best)
		pos = stations[best].MilesAlongRoute
	}

	return purchaseReplay(stations, chosen, totalMiles, profile), nil
}

// canContinueFrom reports whether a vehicle topped off at station self can
// reach the destination or some other unvisited station.
func canContinueFrom(
	stations []domain.ProjectedStation,
	visited []bool,
	self int,
	from, totalMiles, rangeMiles float64,
) bool {
	if from+rangeMiles >= totalMiles {
		return true
	}
	for j, s := range stations {
		if j == self || visited[j] {
			continue
		}
		if s.MilesAlongRoute > from && s.MilesAlongRoute <= from+rangeMiles {
			return true
		}
	}
	return false
}

// purchaseReplay walks the chosen stations in order and computes the minimum
// purchase at each so the vehicle exactly reaches the next refuel point.
func purchaseReplay(
	stations []domain.ProjectedStation,
	chosen []int,
	totalMiles float64,
	profile domain.VehicleProfile,
) []domain.FuelStop {
	stops := make([]domain.FuelStop, 0, len(chosen))

	fuelMiles := profile.MaxRangeMiles
	prev := 0.0

	for k, idx := range chosen {
		st := stations[idx]
		fuelMiles -= st.MilesAlongRoute - prev

		next := totalMiles
		if k+1 < len(chosen) {
			next = stations[chosen[k+1]].MilesAlongRoute
		}

		needMiles := next - st.MilesAlongRoute
		buyMiles := needMiles - fuelMiles

		if buyMiles > 0 {
			gallons := profile.GallonsFor(buyMiles)
			stops = append(stops, domain.FuelStop{
				Station:         st.Station,
				MilesAlongRoute: st.MilesAlongRoute,
				Gallons:         gallons,
				Cost:            gallons * st.PricePerGallon,
			})
			fuelMiles = needMiles
		}

		prev = st.MilesAlongRoute
	}

	return stops
}
