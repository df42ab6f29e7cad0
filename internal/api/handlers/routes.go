package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"fuelroute-service/internal/api/dto"
	"fuelroute-service/internal/domain"
	"fuelroute-service/internal/ports"
	"fuelroute-service/internal/services"

	"github.com/rs/zerolog/log"
)

type RouteHandler struct {
	Geocoder    ports.Geocoder
	Routes      ports.RouteProvider
	Repo        ports.StationRepository
	Profile     domain.VehicleProfile
	RadiusMiles float64
}

// Plan computes a cost-minimizing fuel plan for one start/end pair.
// It validates the request, delegates to the planning service, and maps
// domain failures onto response statuses.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	start := strings.TrimSpace(req.StartLocation)
	end := strings.TrimSpace(req.EndLocation)
	if start == "" || end == "" {
		writeError(w, r, http.StatusBadRequest, "start_location and end_location are required")
		return
	}

	plan, err := services.PlanTrip(r.Context(), services.PlanTripRequest{
		StartLocation: start,
		EndLocation:   end,
		RadiusMiles:   h.RadiusMiles,
		Profile:       h.Profile,
	}, h.Geocoder, h.Routes, h.Repo)
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, tripPlanResponse(plan))
}

func (h *RouteHandler) writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidLocation):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoStationsNearRoute), errors.Is(err, domain.ErrInfeasibleRoute):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrUpstream):
		log.Error().Err(err).Msg("upstream failure during trip planning")
		writeError(w, r, http.StatusBadGateway, "upstream service unavailable")
	default:
		log.Error().Err(err).Msg("plan trip failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func tripPlanResponse(plan domain.TripPlan) dto.TripPlanResponse {
	geometry := make([][]float64, 0, len(plan.Points))
	for _, p := range plan.Points {
		geometry = append(geometry, p.CoordsToList())
	}

	stops := make([]dto.FuelStopResponse, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		stops = append(stops, dto.FuelStopResponse{
			Name:            s.Name,
			Address:         s.Address,
			Lon:             s.Coord.Lon,
			Lat:             s.Coord.Lat,
			PricePerGallon:  s.PricePerGallon,
			MilesAlongRoute: round(s.MilesAlongRoute, 2),
			Gallons:         round(s.Gallons, 3),
			Cost:            round(s.Cost, 2),
		})
	}

	return dto.TripPlanResponse{
		RouteGeometry:        geometry,
		TotalDistanceMiles:   round(plan.TotalMiles, 3),
		TotalDurationSeconds: plan.DurationSeconds,
		FuelStops:            stops,
		TotalGallons:         round(plan.TotalGallons, 3),
		TotalCost:            round(plan.TotalCost, 2),
	}
}
