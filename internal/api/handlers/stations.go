package handlers

import (
	"net/http"

	"fuelroute-service/internal/api/dto"
	"fuelroute-service/internal/ports"

	"github.com/rs/zerolog/log"
)

// StationHandler exposes read-only station catalog endpoints.
type StationHandler struct {
	Repo ports.StationRepository
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stations, err := h.Repo.ListStations(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list stations failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStationsResponse{
		Stations: make([]dto.StationResponse, 0, len(stations)),
	}
	for _, s := range stations {
		res.Stations = append(res.Stations, dto.StationResponse{
			Name:           s.Name,
			Address:        s.Address,
			Lon:            s.Coord.Lon,
			Lat:            s.Coord.Lat,
			PricePerGallon: s.PricePerGallon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
