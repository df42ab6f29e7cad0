package domain

// Fixed vehicle assumptions for trip planning. The tank starts full, so the
// vehicle has MaxRangeMiles of fuel on board at mile zero.
type VehicleProfile struct {
	MaxRangeMiles  float64
	MilesPerGallon float64
}

// DefaultVehicleProfile is the assumed truck: a 500 mile tank at 10 mpg.
func DefaultVehicleProfile() VehicleProfile {
	return VehicleProfile{MaxRangeMiles: 500, MilesPerGallon: 10}
}

// GallonsFor converts a distance in miles into gallons of fuel consumed.
func (v VehicleProfile) GallonsFor(miles float64) float64 {
	return miles / v.MilesPerGallon
}
