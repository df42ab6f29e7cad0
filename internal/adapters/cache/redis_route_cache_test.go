package cache

import (
	"context"
	"testing"
	"time"

	"fuelroute-service/internal/domain"
	"fuelroute-service/internal/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRouteCache(t *testing.T) *RedisRouteCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisRouteCache(client, time.Hour)
}

func TestRedisRouteCacheRoundTrip(t *testing.T) {
	c := newTestRouteCache(t)
	ctx := context.Background()

	origin := domain.Coordinates{Lon: -101.85, Lat: 35.19}
	destination := domain.Coordinates{Lon: -97.60, Lat: 35.46}

	_, ok, err := c.Get(ctx, origin, destination)
	require.NoError(t, err)
	require.False(t, ok)

	want := ports.RouteResult{
		Points: []domain.Coordinates{
			{Lon: -101.85, Lat: 35.19},
			{Lon: -99.50, Lat: 35.30},
			{Lon: -97.60, Lat: 35.46},
		},
		DistanceMeters:  412345.6,
		DurationSeconds: 14200,
	}
	require.NoError(t, c.Put(ctx, origin, destination, want))

	got, ok, err := c.Get(ctx, origin, destination)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestRedisRouteCacheKeysByEndpointPair(t *testing.T) {
	c := newTestRouteCache(t)
	ctx := context.Background()

	a := domain.Coordinates{Lon: -101.85, Lat: 35.19}
	b := domain.Coordinates{Lon: -97.60, Lat: 35.46}

	require.NoError(t, c.Put(ctx, a, b, ports.RouteResult{DistanceMeters: 1}))

	// Reversed pair is a different trip.
	_, ok, err := c.Get(ctx, b, a)
	require.NoError(t, err)
	require.False(t, ok)
}
