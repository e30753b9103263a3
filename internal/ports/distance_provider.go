package ports

import (
	"context"
	"grid-dispatch-service/internal/domain"
)

// Shortest unweighted path length between two locations.
// Reachable=false means no path exists; Steps is then meaningless.
type DistanceResult struct {
	Steps     int
	Reachable bool
}

// Contract for retrieving grid distance between locations.
type DistanceProvider interface {
	// Return the shortest distance from origin to destination.
	// An unreachable destination is a normal result, not an error.
	GetDistance(ctx context.Context, origin domain.Location, destination domain.Location) (DistanceResult, error)
}
