package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fuelroute-service/internal/domain"
	"fuelroute-service/internal/platform/obs"
	"fuelroute-service/internal/ports"

	"github.com/rs/zerolog/log"
)

// RouteCache is an optional persistent cache for route results keyed by the
// origin/destination coordinate pair.
type RouteCache interface {
	Get(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteResult, bool, error)
	Put(ctx context.Context, origin, destination domain.Coordinates, result ports.RouteResult) error
}

// OSRMRouteProvider implements RouteProvider against the public OSRM router.
// One route request per call; the retry layer only covers transport-level
// failures of that single call.
type OSRMRouteProvider struct {
	client  *restClient
	baseURL string
	cache   RouteCache
}

func NewOSRMRouteProvider(cache RouteCache) *OSRMRouteProvider {
	return &OSRMRouteProvider{
		client:  newRESTClient(15 * time.Second),
		baseURL: "https://router.project-osrm.org",
		cache:   cache,
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Route fetches a single driving route. Failures surface as domain.ErrUpstream.
func (o *OSRMRouteProvider) Route(ctx context.Context, origin, destination domain.Coordinates) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "osrm.Route")(&err)

	if o.cache != nil {
		result, ok, err := o.cache.Get(ctx, origin, destination)
		if err != nil {
			return ports.RouteResult{}, fmt.Errorf("route: cache read: %w", err)
		}
		if ok {
			return result, nil
		}
	}

	endpoint := fmt.Sprintf(
		"%s/route/v1/driving/%s,%s;%s,%s",
		o.baseURL,
		formatCoord(origin.Lon), formatCoord(origin.Lat),
		formatCoord(destination.Lon), formatCoord(destination.Lat),
	)

	resp, err := o.client.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		q := req.URL.Query()
		q.Set("overview", "full")
		q.Set("geometries", "geojson")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("route: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, fmt.Errorf("route: %w: decode response: %v", domain.ErrUpstream, err)
	}

	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return ports.RouteResult{}, fmt.Errorf("route: %w: OSRM returned no route (code %q)", domain.ErrUpstream, decoded.Code)
	}

	route := decoded.Routes[0]
	points := make([]domain.Coordinates, 0, len(route.Geometry.Coordinates))
	for _, c := range route.Geometry.Coordinates {
		if len(c) != 2 {
			return ports.RouteResult{}, fmt.Errorf("route: %w: invalid coordinate pair in geometry", domain.ErrUpstream)
		}
		points = append(points, domain.Coordinates{Lon: c[0], Lat: c[1]})
	}

	result := ports.RouteResult{
		Points:          points,
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
	}

	if o.cache != nil {
		if err := o.cache.Put(ctx, origin, destination, result); err != nil {
			log.Warn().Err(err).Msg("route cache write failed")
		}
	}

	return result, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
