package api

import (
	"net/http"

	"fuelroute-service/internal/api/handlers"
	"fuelroute-service/internal/domain"
	"fuelroute-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.StationRepository,
	geocoder ports.Geocoder,
	routes ports.RouteProvider,
	profile domain.VehicleProfile,
	radiusMiles float64,
) http.Handler {
	mux := http.NewServeMux()

	stationHandler := &handlers.StationHandler{Repo: repo}
	routeHandler := &handlers.RouteHandler{
		Geocoder:    geocoder,
		Routes:      routes,
		Repo:        repo,
		Profile:     profile,
		RadiusMiles: radiusMiles,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stations", stationHandler.List)
	mux.HandleFunc("/routes", routeHandler.Plan)

	return loggingMiddleware(mux)
}
