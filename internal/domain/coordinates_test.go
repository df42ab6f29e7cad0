package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMilesToKnownDistance(t *testing.T) {
	sf := Coordinates{Lon: -122.4194, Lat: 37.7749}
	la := Coordinates{Lon: -118.2437, Lat: 34.0522}

	// Great-circle SF -> LA is about 347 miles.
	require.InDelta(t, 347.4, sf.MilesTo(la), 3)
	require.InDelta(t, sf.MilesTo(la), la.MilesTo(sf), 1e-9)
	require.InDelta(t, 0, sf.MilesTo(sf), 1e-9)
}

func TestMetersToMiles(t *testing.T) {
	require.InDelta(t, 1, MetersToMiles(1609.344), 1e-12)
}
