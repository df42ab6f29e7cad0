package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadStationsCSVCommaSeparated(t *testing.T) {
	path := writeTempCSV(t, `name,lat,lon,price
Big Horn Travel Center,35.19,-101.85,3.11
Flying J,35.46,-97.60,2.98
`)

	stations, err := LoadStationsCSV(path)
	require.NoError(t, err)
	require.Len(t, stations, 2)
	require.Equal(t, "Big Horn Travel Center", stations[0].Name)
	require.InDelta(t, -101.85, stations[0].Coord.Lon, 1e-9)
	require.InDelta(t, 35.19, stations[0].Coord.Lat, 1e-9)
	require.InDelta(t, 3.11, stations[0].PricePerGallon, 1e-9)
}

func TestLoadStationsCSVPipeSeparatedAliases(t *testing.T) {
	path := writeTempCSV(t, `Truckstop Name|Address|Latitude|Longitude|Retail Price
Love's #277|I-40 Exit 96|35.24|-102.50|2.89
`)

	stations, err := LoadStationsCSV(path)
	require.NoError(t, err)
	require.Len(t, stations, 1)
	require.Equal(t, "Love's #277", stations[0].Name)
	require.Equal(t, "I-40 Exit 96", stations[0].Address)
	require.InDelta(t, 2.89, stations[0].PricePerGallon, 1e-9)
}

func TestLoadStationsCSVSkipsBadRows(t *testing.T) {
	path := writeTempCSV(t, `name,lat,lon,price
Good Stop,35.19,-101.85,3.11
No Price,35.20,-101.90,not-a-number
,35.21,-101.95,3.05
Free Fuel,35.22,-101.99,0
`)

	stations, err := LoadStationsCSV(path)
	require.NoError(t, err)
	require.Len(t, stations, 1)
	require.Equal(t, "Good Stop", stations[0].Name)
}

func TestLoadStationsCSVNoValidRows(t *testing.T) {
	path := writeTempCSV(t, `name,lat,lon,price
,bad,data,here
`)

	_, err := LoadStationsCSV(path)
	require.Error(t, err)
}

func TestLoadStationsCSVMissingFile(t *testing.T) {
	_, err := LoadStationsCSV(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestCSVStationRepositoryLoadsOnce(t *testing.T) {
	path := writeTempCSV(t, `name,lat,lon,price
Big Horn Travel Center,35.19,-101.85,3.11
`)

	repo := NewCSVStationRepository(path)

	first, err := repo.ListStations(context.Background())
	require.NoError(t, err)

	// Removing the file after the first load must not matter.
	require.NoError(t, os.Remove(path))

	second, err := repo.ListStations(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
}
