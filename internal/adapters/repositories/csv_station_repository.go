package repositories

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"fuelroute-service/internal/domain"
)

// Column-name aliases accepted in station price files. Supplier exports vary.
var (
	nameAliases    = []string{"station_name", "truckstop name", "station", "name", "site"}
	addressAliases = []string{"address", "street", "location"}
	latAliases     = []string{"lat", "latitude", "y", "gps_lat"}
	lonAliases     = []string{"lon", "lng", "longitude", "x", "gps_lon", "long"}
	priceAliases   = []string{"price", "fuel_price", "gas_price", "price_per_gallon", "retail price", "cost"}
)

// CSVStationRepository loads the station catalog from a delimited text file.
// The file is read once per process; the resulting slice is never mutated, so
// concurrent readers need no locking.
type CSVStationRepository struct {
	Path string

	once     sync.Once
	stations []domain.Station
	err      error
}

func NewCSVStationRepository(path string) *CSVStationRepository {
	return &CSVStationRepository{Path: path}
}

// Return all stations from the price file, loading it on first use.
func (r *CSVStationRepository) ListStations(ctx context.Context) ([]domain.Station, error) {
	r.once.Do(func() {
		r.stations, r.err = LoadStationsCSV(r.Path)
	})
	if r.err != nil {
		return nil, fmt.Errorf("csv station repository: %w", r.err)
	}
	return r.stations, nil
}

// LoadStationsCSV parses a delimited station price file. It tries comma,
// semicolon, tab, and pipe separators in turn and matches header names
// against the alias sets above. Rows with unparseable fields are skipped;
// a file with no valid rows is an error.
func LoadStationsCSV(path string) ([]domain.Station, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load stations: read %q: %w", path, err)
	}

	var lastErr error
	for _, sep := range []rune{',', ';', '\t', '|'} {
		reader := csv.NewReader(bytes.NewReader(raw))
		reader.Comma = sep
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil {
			lastErr = err
			continue
		}
		if len(records) < 2 || len(records[0]) < 2 {
			lastErr = fmt.Errorf("separator %q yields no columns", sep)
			continue
		}

		stations, err := parseStationRecords(records)
		if err != nil {
			lastErr = err
			continue
		}
		return stations, nil
	}

	return nil, fmt.Errorf("load stations: %q: no separator produced valid rows: %w", path, lastErr)
}

func parseStationRecords(records [][]string) ([]domain.Station, error) {
	header := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		header[strings.ToLower(strings.TrimSpace(col))] = i
	}

	findCol := func(aliases []string) int {
		for _, a := range aliases {
			if i, ok := header[a]; ok {
				return i
			}
		}
		return -1
	}

	nameCol := findCol(nameAliases)
	addrCol := findCol(addressAliases)
	latCol := findCol(latAliases)
	lonCol := findCol(lonAliases)
	priceCol := findCol(priceAliases)

	if nameCol < 0 || latCol < 0 || lonCol < 0 || priceCol < 0 {
		return nil, fmt.Errorf(
			"missing required columns (name=%d lat=%d lon=%d price=%d)",
			nameCol, latCol, lonCol, priceCol,
		)
	}

	stations := make([]domain.Station, 0, len(records)-1)
	for _, row := range records[1:] {
		s, ok := parseStationRow(row, nameCol, addrCol, latCol, lonCol, priceCol)
		if !ok {
			continue
		}
		stations = append(stations, s)
	}

	if len(stations) == 0 {
		return nil, fmt.Errorf("no valid station rows found")
	}

	return stations, nil
}

func parseStationRow(row []string, nameCol, addrCol, latCol, lonCol, priceCol int) (domain.Station, bool) {
	max := nameCol
	for _, c := range []int{latCol, lonCol, priceCol} {
		if c > max {
			max = c
		}
	}
	if len(row) <= max {
		return domain.Station{}, false
	}

	name := strings.TrimSpace(row[nameCol])
	if name == "" {
		return domain.Station{}, false
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(row[latCol]), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(row[lonCol]), 64)
	price, priceErr := strconv.ParseFloat(strings.TrimSpace(row[priceCol]), 64)
	if latErr != nil || lonErr != nil || priceErr != nil || price <= 0 {
		return domain.Station{}, false
	}

	addr := ""
	if addrCol >= 0 && addrCol < len(row) {
		addr = strings.TrimSpace(row[addrCol])
	}

	return domain.Station{
		Name:           name,
		Address:        addr,
		Coord:          domain.Coordinates{Lon: lon, Lat: lat},
		PricePerGallon: price,
	}, true
}
