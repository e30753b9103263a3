package ports

import (
	"context"
	"grid-dispatch-service/internal/domain"
)

// Optional extension of DistanceProvider that supports batched lookups.
type DistanceMatrixProvider interface {
	DistanceProvider
	// Return distances from many origins to one destination. Each entry equals
	// what GetDistance(ctx, origin, destination) would return.
	GetDistancesTo(ctx context.Context, origins []domain.Location, destination domain.Location) (map[domain.Location]DistanceResult, error)
}
