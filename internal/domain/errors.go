package domain

import "errors"

// Planning failures the HTTP boundary maps to response statuses.
// Services wrap these with context; handlers detect them with errors.Is.
var (
	// A start or end location could not be resolved to coordinates.
	ErrInvalidLocation = errors.New("location could not be resolved")

	// No catalog station lies close enough to the route to be a candidate,
	// and the trip does not fit in the starting tank.
	ErrNoStationsNearRoute = errors.New("no fuel stations near the route")

	// A gap between reachable points exceeds the vehicle's range.
	ErrInfeasibleRoute = errors.New("route cannot be completed within vehicle range")

	// An external geocoding or routing call failed.
	ErrUpstream = errors.New("upstream service unavailable")
)
