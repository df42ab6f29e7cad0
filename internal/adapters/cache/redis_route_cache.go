package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fuelroute-service/internal/domain"
	"fuelroute-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// RedisRouteCache stores route results keyed by the origin/destination
// coordinate pair. Routes for a fixed endpoint pair are stable enough that a
// TTL-bounded cache avoids repeated routing calls for popular trips.
type RedisRouteCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisRouteCache{Client: client, TTL: ttl}
}

func routeKey(origin, destination domain.Coordinates) string {
	return fmt.Sprintf("route:%.6f,%.6f|%.6f,%.6f", origin.Lon, origin.Lat, destination.Lon, destination.Lat)
}

// Fetch a cached route result, reporting whether it was found.
func (c *RedisRouteCache) Get(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteResult, bool, error) {
	if c.Client == nil {
		return ports.RouteResult{}, false, errors.New("route cache: redis client is nil")
	}

	raw, err := c.Client.Get(ctx, routeKey(origin, destination)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	var result ports.RouteResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: decode entry: %w", err)
	}

	return result, true, nil
}

// Store a route result under the endpoint pair key.
func (c *RedisRouteCache) Put(ctx context.Context, origin, destination domain.Coordinates, result ports.RouteResult) error {
	if c.Client == nil {
		return errors.New("route cache: redis client is nil")
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("insert route cache: encode entry: %w", err)
	}

	if err := c.Client.Set(ctx, routeKey(origin, destination), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	return nil
}
