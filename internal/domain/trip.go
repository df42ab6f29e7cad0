package domain

// A chosen refueling stop: where to stop and how much to buy there.
type FuelStop struct {
	Station
	MilesAlongRoute float64
	Gallons         float64
	Cost            float64
}

// The complete plan for one trip: route geometry, ordered fuel stops, and
// aggregate totals. Assembled once, never mutated afterwards.
type TripPlan struct {
	Points          []Coordinates
	TotalMiles      float64
	DurationSeconds float64
	Stops           []FuelStop
	TotalGallons    float64
	TotalCost       float64
}
