package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fuelroute-service/internal/domain"
	"fuelroute-service/internal/platform/obs"

	"github.com/rs/zerolog/log"
)

// GeocodeCache is an optional persistent cache consulted before calling the
// geocoding service. Implementations must be safe for concurrent use.
type GeocodeCache interface {
	Get(ctx context.Context, place string) (domain.Coordinates, bool, error)
	Put(ctx context.Context, place string, coord domain.Coordinates) error
}

// LocationIQGeocoder resolves free-text US place names via LocationIQ.
//
// It coordinates place-name normalization, persistent geocode caching, and
// external API calls with retry/backoff. Safe for concurrent use.
type LocationIQGeocoder struct {
	client  *restClient
	apiKey  string
	baseURL string
	cache   GeocodeCache
}

func NewLocationIQGeocoder(apiKey string, cache GeocodeCache) (*LocationIQGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("LocationIQ api key is empty")
	}

	return &LocationIQGeocoder{
		client:  newRESTClient(10 * time.Second),
		apiKey:  apiKey,
		baseURL: "https://us1.locationiq.com/v1",
		cache:   cache,
	}, nil
}

type locationIQResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a place name to coordinates. An unresolvable name yields
// domain.ErrInvalidLocation; provider failures yield domain.ErrUpstream.
func (g *LocationIQGeocoder) Geocode(ctx context.Context, place string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "locationiq.Geocode")(&err)

	norm := normalize(place)
	if norm == "" {
		return domain.Coordinates{}, fmt.Errorf("geocode: %w: empty place name", domain.ErrInvalidLocation)
	}

	if g.cache != nil {
		coord, ok, err := g.cache.Get(ctx, norm)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("geocode: cache read for %q: %w", norm, err)
		}
		if ok {
			return coord, nil
		}
	}

	endpoint := g.baseURL + "/search"

	resp, err := g.client.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		q := req.URL.Query()
		q.Set("key", g.apiKey)
		q.Set("q", norm)
		q.Set("format", "json")
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusUnauthorized, http.StatusForbidden:
				return domain.Coordinates{}, fmt.Errorf("geocode: %w: LocationIQ rejected the API key (status %d)", domain.ErrUpstream, he.Code)
			case http.StatusNotFound:
				// LocationIQ reports "no results" as a 404.
				return domain.Coordinates{}, fmt.Errorf("geocode: %w: %q", domain.ErrInvalidLocation, place)
			}
		}
		return domain.Coordinates{}, fmt.Errorf("geocode: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	var results []locationIQResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode: %w: decode response: %v", domain.ErrUpstream, err)
	}

	if len(results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode: %w: %q", domain.ErrInvalidLocation, place)
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode: %w: invalid coordinates for %q", domain.ErrUpstream, place)
	}

	coord := domain.Coordinates{Lon: lon, Lat: lat}

	if g.cache != nil {
		if err := g.cache.Put(ctx, norm, coord); err != nil {
			log.Warn().Err(err).Str("place", norm).Msg("geocode cache write failed")
		}
	}

	return coord, nil
}
