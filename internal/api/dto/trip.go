package dto

type RouteRequest struct {
	StartLocation string `json:"start_location"`
	EndLocation   string `json:"end_location"`
}

type FuelStopResponse struct {
	Name            string  `json:"name"`
	Address         string  `json:"address,omitempty"`
	Lon             float64 `json:"lon"`
	Lat             float64 `json:"lat"`
	PricePerGallon  float64 `json:"price_per_gallon"`
	MilesAlongRoute float64 `json:"distance_along_route_miles"`
	Gallons         float64 `json:"gallons"`
	Cost            float64 `json:"cost"`
}

type TripPlanResponse struct {
	// Ordered [lon, lat] pairs describing the route.
	RouteGeometry        [][]float64        `json:"route_geometry"`
	TotalDistanceMiles   float64            `json:"total_distance_miles"`
	TotalDurationSeconds float64            `json:"total_duration_seconds"`
	FuelStops            []FuelStopResponse `json:"fuel_stops"`
	TotalGallons         float64            `json:"total_gallons"`
	TotalCost            float64            `json:"total_cost"`
}
