package distance

import (
	"context"
	"fmt"
	"grid-dispatch-service/internal/domain"
	"grid-dispatch-service/internal/ports"
)

// MockPair is one directed distance fixture. Unreachable pairs leave Reachable false.
type MockPair struct {
	From, To  domain.Location
	Steps     int
	Reachable bool
}

type mockKey struct{ from, to domain.Location }

// MockDistanceProvider serves fixed distances and records how often it was asked.
type MockDistanceProvider struct {
	m     map[mockKey]ports.DistanceResult
	Calls int
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[mockKey]ports.DistanceResult, len(pairs))
	for _, p := range pairs {
		m[mockKey{p.From, p.To}] = ports.DistanceResult{Steps: p.Steps, Reachable: p.Reachable}
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) GetDistance(ctx context.Context, origin, destination domain.Location) (ports.DistanceResult, error) {
	p.Calls++
	if origin == destination {
		return ports.DistanceResult{Steps: 0, Reachable: true}, nil
	}

	r, ok := p.m[mockKey{origin, destination}]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("missing pair %s -> %s", origin, destination)
	}

	return r, nil
}
