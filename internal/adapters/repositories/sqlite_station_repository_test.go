package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newSeededDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(db))

	path := writeTempCSV(t, `name,address,lat,lon,price
Big Horn Travel Center,I-40 Exit 75,35.19,-101.85,3.11
Flying J,I-40 Exit 127,35.46,-97.60,2.98
`)
	require.NoError(t, SeedFromCSV(db, path))

	return db
}

func TestSqliteStationRepositoryListStations(t *testing.T) {
	repo := NewSqliteStationRepository(newSeededDB(t))

	stations, err := repo.ListStations(context.Background())
	require.NoError(t, err)
	require.Len(t, stations, 2)

	require.Equal(t, "Big Horn Travel Center", stations[0].Name)
	require.Equal(t, "I-40 Exit 75", stations[0].Address)
	require.InDelta(t, -101.85, stations[0].Coord.Lon, 1e-9)
	require.InDelta(t, 35.19, stations[0].Coord.Lat, 1e-9)
	require.InDelta(t, 3.11, stations[0].PricePerGallon, 1e-9)
}

func TestSeedFromCSVIsIdempotent(t *testing.T) {
	db := newSeededDB(t)

	path := writeTempCSV(t, `name,address,lat,lon,price
Big Horn Travel Center,I-40 Exit 75,35.19,-101.85,3.05
`)
	require.NoError(t, SeedFromCSV(db, path))

	repo := NewSqliteStationRepository(db)
	stations, err := repo.ListStations(context.Background())
	require.NoError(t, err)
	require.Len(t, stations, 2)
}
