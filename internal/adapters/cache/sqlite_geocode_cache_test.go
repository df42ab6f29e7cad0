package cache

import (
	"context"
	"database/sql"
	"testing"

	"fuelroute-service/internal/adapters/repositories"
	"fuelroute-service/internal/domain"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestGeocodeCache(t *testing.T) *SqliteGeocodeCache {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, repositories.InitSchema(db))
	return NewSqliteGeocodeCache(db)
}

func TestSqliteGeocodeCacheRoundTrip(t *testing.T) {
	c := newTestGeocodeCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "Amarillo, TX")
	require.NoError(t, err)
	require.False(t, ok)

	want := domain.Coordinates{Lon: -101.83, Lat: 35.19}
	require.NoError(t, c.Put(ctx, "Amarillo, TX", want))

	got, ok, err := c.Get(ctx, "Amarillo, TX")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestSqliteGeocodeCacheReplacesEntries(t *testing.T) {
	c := newTestGeocodeCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "Amarillo, TX", domain.Coordinates{Lon: -101, Lat: 35}))
	require.NoError(t, c.Put(ctx, "Amarillo, TX", domain.Coordinates{Lon: -101.83, Lat: 35.19}))

	got, ok, err := c.Get(ctx, "Amarillo, TX")
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, -101.83, got.Lon, 1e-9)
}

func TestSqliteGeocodeCacheRejectsEmptyPlace(t *testing.T) {
	c := newTestGeocodeCache(t)
	ctx := context.Background()

	_, _, err := c.Get(ctx, "  ")
	require.Error(t, err)
	require.Error(t, c.Put(ctx, "", domain.Coordinates{}))
}
