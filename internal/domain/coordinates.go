package domain

import "math"

const (
	earthRadiusMeters = 6371000.0
	metersPerMile     = 1609.344
)

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// MilesTo returns the great-circle distance to other in miles (haversine).
func (c Coordinates) MilesTo(other Coordinates) float64 {
	phi1 := c.Lat * math.Pi / 180
	phi2 := other.Lat * math.Pi / 180
	dPhi := (other.Lat - c.Lat) * math.Pi / 180
	dLambda := (other.Lon - c.Lon) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	d := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)) * earthRadiusMeters

	return d / metersPerMile
}

// MetersToMiles converts a distance reported in meters (routing services)
// into the miles used throughout the planning domain.
func MetersToMiles(m float64) float64 { return m / metersPerMile }
