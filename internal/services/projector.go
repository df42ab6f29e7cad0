package services

import (
	"fmt"
	"fuelroute-service/internal/domain"
	"math"
	"slices"
)

// DefaultProximityRadiusMiles bounds how far from the route a station may sit
// and still count as a candidate (roughly 50 km, matching highway-exit reach).
const DefaultProximityRadiusMiles = 31.0

// ProjectStations maps catalog stations onto the route's cumulative-distance
// axis. For each station it finds the nearest point on any polyline segment,
// records the miles traveled to reach that point, and discards stations whose
// perpendicular offset exceeds radiusMiles.
//
// The result is ordered by miles along the route, cheaper station first when
// co-located. Pure function of its inputs.
//
// Fails with domain.ErrNoStationsNearRoute when no candidate survives and the
// trip cannot be completed on the starting tank alone.
func ProjectStations(
	stations []domain.Station,
	points []domain.Coordinates,
	totalMiles float64,
	radiusMiles float64,
	profile domain.VehicleProfile,
) ([]domain.ProjectedStation, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("project stations: route must have at least 2 points, got %d", len(points))
	}

	cum := cumulativeMiles(points)

	projected := make([]domain.ProjectedStation, 0, len(stations))
	for _, s := range stations {
		miles, offset := nearestOnRoute(s.Coord, points, cum)
		if offset > radiusMiles {
			continue
		}

		// Clamp projection drift: distance along the route is bounded by the
		// route itself.
		if miles > totalMiles {
			miles = totalMiles
		}

		projected = append(projected, domain.ProjectedStation{
			Station:         s,
			MilesAlongRoute: miles,
			OffsetMiles:     offset,
		})
	}

	slices.SortFunc(projected, func(a, b domain.ProjectedStation) int {
		if a.MilesAlongRoute != b.MilesAlongRoute {
			if a.MilesAlongRoute < b.MilesAlongRoute {
				return -1
			}
			return 1
		}
		if a.PricePerGallon != b.PricePerGallon {
			if a.PricePerGallon < b.PricePerGallon {
				return -1
			}
			return 1
		}
		return 0
	})

	if len(projected) == 0 && totalMiles > profile.MaxRangeMiles {
		return nil, fmt.Errorf(
			"project stations: %w: route is %.1f miles but starting range is only %.1f miles",
			domain.ErrNoStationsNearRoute, totalMiles, profile.MaxRangeMiles,
		)
	}

	return projected, nil
}

// cumulativeMiles returns the miles traveled to reach each route point.
func cumulativeMiles(points []domain.Coordinates) []float64 {
	cum := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		cum[i] = cum[i-1] + points[i-1].MilesTo(points[i])
	}
	return cum
}

// nearestOnRoute finds the point on the polyline closest to p and returns the
// cumulative miles to that point plus the perpendicular offset in miles.
//
// Each segment is treated as a straight line in a local equirectangular plane
// centered on the station; adequate at station-to-highway scales, no
// map-matching needed.
func nearestOnRoute(p domain.Coordinates, points []domain.Coordinates, cum []float64) (miles, offset float64) {
	const degToMiles = earthRadiusMilesApprox * math.Pi / 180

	cosLat := math.Cos(p.Lat * math.Pi / 180)
	toPlane := func(c domain.Coordinates) (x, y float64) {
		return (c.Lon - p.Lon) * degToMiles * cosLat, (c.Lat - p.Lat) * degToMiles
	}

	offset = math.MaxFloat64
	for i := 1; i < len(points); i++ {
		ax, ay := toPlane(points[i-1])
		bx, by := toPlane(points[i])

		dx, dy := bx-ax, by-ay
		segLen2 := dx*dx + dy*dy

		// Station is at the plane origin, so the projection parameter is the
		// dot product of (origin - a) with the segment direction.
		t := 0.0
		if segLen2 > 0 {
			t = (-ax*dx - ay*dy) / segLen2
			t = math.Max(0, math.Min(1, t))
		}

		nx, ny := ax+t*dx, ay+t*dy
		d := math.Hypot(nx, ny)
		if d < offset {
			offset = d
			miles = cum[i-1] + t*(cum[i]-cum[i-1])
		}
	}

	return miles, offset
}

const earthRadiusMilesApprox = 3958.8
