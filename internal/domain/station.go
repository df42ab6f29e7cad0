package domain

// A priced fuel station from the static catalog.
// Stations are created at catalog load and read-only afterwards.
type Station struct {
	Name           string
	Address        string
	Coord          Coordinates
	PricePerGallon float64
}

// A catalog station mapped onto a specific route's distance axis.
// Recomputed per request since the route differs each time.
type ProjectedStation struct {
	Station

	// Cumulative miles traveled to reach the point of the route
	// nearest to the station.
	MilesAlongRoute float64

	// Perpendicular distance from the station to the route, in miles.
	// Used only to decide candidacy.
	OffsetMiles float64
}
