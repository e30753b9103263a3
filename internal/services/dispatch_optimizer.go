package services

import (
	"context"
	"errors"
	"fmt"
	"grid-dispatch-service/internal/domain"
	"grid-dispatch-service/internal/platform/obs"
	"grid-dispatch-service/internal/ports"
)

// DispatchRequest describes one optimizer call. Nil ceilings are unset.
type DispatchRequest struct {
	Pickup    domain.Location
	Dropoff   domain.Location
	MaxPrice  *float64
	MaxTime   *int
	Objective domain.Objective
}

// FindOptimalAgent selects the agent whose route agent->pickup->dropoff best
// satisfies the objective within the ceilings.
//
// The boolean is false when no agent qualifies: the dropoff cannot be reached
// from the pickup, no agent can reach the pickup, or every reachable agent
// breaks a ceiling. The error is reserved for distance lookup failures.
//
// Ties keep the earliest agent in registry order; only a strictly better
// candidate replaces the current best.
func FindOptimalAgent(
	ctx context.Context,
	req DispatchRequest,
	registry domain.AgentRegistry,
	provider ports.DistanceProvider,
) (_ domain.DeliveryQuote, _ bool, err error) {
	defer obs.Time(ctx, "dispatch.FindOptimalAgent")(&err)

	if provider == nil {
		return domain.DeliveryQuote{}, false, errors.New("dispatch: distance provider is nil")
	}

	agents := registry.Agents()
	if len(agents) == 0 {
		return domain.DeliveryQuote{}, false, nil
	}

	// The delivery leg is the same for every agent, so it is looked up once.
	leg, err := provider.GetDistance(ctx, req.Pickup, req.Dropoff)
	if err != nil {
		return domain.DeliveryQuote{}, false, fmt.Errorf(
			"dispatch: get distance pickup %s -> dropoff %s: %w",
			req.Pickup, req.Dropoff, err,
		)
	}
	if !leg.Reachable {
		return domain.DeliveryQuote{}, false, nil
	}

	approach, err := approachDistances(ctx, agents, req.Pickup, provider)
	if err != nil {
		return domain.DeliveryQuote{}, false, err
	}

	var (
		best  domain.DeliveryQuote
		found bool
	)

	for _, a := range agents {
		d, ok := approach[a.Location]
		if !ok || !d.Reachable {
			continue
		}

		total := d.Steps + leg.Steps
		profile := a.Profile()
		q := domain.DeliveryQuote{
			AgentLocation: a.Location,
			Transport:     a.Transport,
			Distance:      total,
			Price:         profile.Price(total),
			Time:          profile.Time(total),
		}

		if req.MaxPrice != nil && q.Price > *req.MaxPrice {
			continue
		}
		if req.MaxTime != nil && q.Time > *req.MaxTime {
			continue
		}

		if !found || better(q, best, req.Objective) {
			best = q
			found = true
		}
	}

	return best, found, nil
}

func better(candidate, current domain.DeliveryQuote, objective domain.Objective) bool {
	if objective == domain.ObjectiveFastest {
		return candidate.Time < current.Time
	}
	return candidate.Price < current.Price
}

// approachDistances returns agent->pickup distances keyed by agent location.
// Prefer a single batched lookup when the provider supports it.
func approachDistances(
	ctx context.Context,
	agents []domain.Agent,
	pickup domain.Location,
	provider ports.DistanceProvider,
) (map[domain.Location]ports.DistanceResult, error) {
	origins := make([]domain.Location, 0, len(agents))
	for _, a := range agents {
		origins = append(origins, a.Location)
	}

	if mp, ok := provider.(ports.DistanceMatrixProvider); ok {
		results, err := mp.GetDistancesTo(ctx, origins, pickup)
		if err != nil {
			return nil, fmt.Errorf("dispatch: get agent distances to pickup %s: %w", pickup, err)
		}
		return results, nil
	}

	results := make(map[domain.Location]ports.DistanceResult, len(origins))
	for _, o := range origins {
		r, err := provider.GetDistance(ctx, o, pickup)
		if err != nil {
			return nil, fmt.Errorf("dispatch: get distance agent %s -> pickup %s: %w", o, pickup, err)
		}
		results[o] = r
	}

	return results, nil
}
