package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fuelroute-service/internal/adapters/geo"
	"fuelroute-service/internal/adapters/repositories"
	"fuelroute-service/internal/api/dto"
	"fuelroute-service/internal/domain"
	"fuelroute-service/internal/ports"

	"github.com/stretchr/testify/require"
)

const milesInMeters = 1609.344

func testRouteHandler(routes ports.RouteProvider, stations []domain.Station) *RouteHandler {
	return &RouteHandler{
		Geocoder: &geo.MockGeocoder{Places: map[string]domain.Coordinates{
			"Amarillo, TX":      {Lon: -101.83, Lat: 35.19},
			"Oklahoma City, OK": {Lon: -97.52, Lat: 35.47},
		}},
		Routes:  routes,
		Repo:    repositories.NewMemoryStationRepository(stations),
		Profile: domain.VehicleProfile{MaxRangeMiles: 500, MilesPerGallon: 10},
	}
}

func straightRoute(fromLat, toLat, miles float64) ports.RouteResult {
	points := make([]domain.Coordinates, 0)
	for lat := fromLat; lat <= toLat+1e-9; lat++ {
		points = append(points, domain.Coordinates{Lon: 0, Lat: lat})
	}
	return ports.RouteResult{
		Points:          points,
		DistanceMeters:  miles * milesInMeters,
		DurationSeconds: miles * 55,
	}
}

func geometryMiles(points []domain.Coordinates) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].MilesTo(points[i])
	}
	return total
}

func planRequest(t *testing.T, h *RouteHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	return rec
}

func TestPlanRejectsNonPost(t *testing.T) {
	h := testRouteHandler(&geo.MockRouteProvider{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/routes", nil)
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestPlanRejectsInvalidBody(t *testing.T) {
	h := testRouteHandler(&geo.MockRouteProvider{}, nil)

	require.Equal(t, http.StatusBadRequest, planRequest(t, h, `notjson`).Code)
	require.Equal(t, http.StatusBadRequest, planRequest(t, h, `{"start_location":"A"}`).Code)
	require.Equal(t, http.StatusBadRequest, planRequest(t, h, `{"start_location":"A","unknown":1}`).Code)
	require.Equal(t, http.StatusBadRequest, planRequest(t, h, `{"start_location":"A","end_location":"B"}{}`).Code)
}

func TestPlanUnknownLocationIsBadRequest(t *testing.T) {
	h := testRouteHandler(&geo.MockRouteProvider{}, nil)

	rec := planRequest(t, h, `{"start_location":"Nowhere, ZZ","end_location":"Oklahoma City, OK"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlanSingleTankTrip(t *testing.T) {
	routes := &geo.MockRouteProvider{Result: straightRoute(35, 40, 300)}
	h := testRouteHandler(routes, []domain.Station{
		{Name: "roadside", Coord: domain.Coordinates{Lon: 0.01, Lat: 37}, PricePerGallon: 3.00},
	})

	rec := planRequest(t, h, `{"start_location":"Amarillo, TX","end_location":"Oklahoma City, OK"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.TripPlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	total := geometryMiles(routes.Result.Points)
	require.InDelta(t, total, res.TotalDistanceMiles, 0.001)
	require.InDelta(t, total/10, res.TotalGallons, 0.001)
	require.Empty(t, res.FuelStops)
	require.InDelta(t, 0, res.TotalCost, 1e-9)
	require.Len(t, res.RouteGeometry, 6)
	require.Equal(t, 1, routes.Calls)
}

func TestPlanInfeasibleRouteIsUnprocessable(t *testing.T) {
	// Well beyond one tank with no station near the route.
	routes := &geo.MockRouteProvider{Result: straightRoute(30, 48, 1200)}
	h := testRouteHandler(routes, nil)

	rec := planRequest(t, h, `{"start_location":"Amarillo, TX","end_location":"Oklahoma City, OK"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPlanUpstreamFailureIsBadGateway(t *testing.T) {
	routes := &geo.MockRouteProvider{Err: domain.ErrUpstream}
	h := testRouteHandler(routes, nil)

	rec := planRequest(t, h, `{"start_location":"Amarillo, TX","end_location":"Oklahoma City, OK"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)
}
