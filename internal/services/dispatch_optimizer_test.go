package services

import (
	"context"
	"errors"
	"grid-dispatch-service/internal/adapters/distance"
	"grid-dispatch-service/internal/domain"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleLayout = []string{
	"###.#",
	"#.BR.",
	"..#.#",
	"#C.A.",
	"#.###",
}

func loc(r, c int) domain.Location { return domain.Location{Row: r, Col: c} }

func mustGrid(t *testing.T, layout []string) *domain.Grid {
	t.Helper()
	g, err := domain.NewGrid(layout)
	require.NoError(t, err)
	return g
}

// Distances of sampleLayout: restaurant (1,3) -> client (3,1) is 4,
// bike (1,2) is 1 from the restaurant, car (3,3) is 2.
func samplePairs() []distance.MockPair {
	return []distance.MockPair{
		{From: loc(1, 3), To: loc(3, 1), Steps: 4, Reachable: true},
		{From: loc(1, 2), To: loc(1, 3), Steps: 1, Reachable: true},
		{From: loc(3, 3), To: loc(1, 3), Steps: 2, Reachable: true},
	}
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestFindOptimalAgentObjectives(t *testing.T) {
	g := mustGrid(t, sampleLayout)
	ctx := context.Background()

	cases := []struct {
		name      string
		objective domain.Objective
		maxPrice  *float64
		maxTime   *int
		want      domain.DeliveryQuote
		found     bool
	}{
		{
			name:      "CheapestPicksBike",
			objective: domain.ObjectiveCheapest,
			want:      domain.DeliveryQuote{AgentLocation: loc(1, 2), Transport: domain.TransportBike, Distance: 5, Price: 15, Time: 25},
			found:     true,
		},
		{
			name:      "FastestPicksCar",
			objective: domain.ObjectiveFastest,
			want:      domain.DeliveryQuote{AgentLocation: loc(3, 3), Transport: domain.TransportCar, Distance: 6, Price: 30, Time: 18},
			found:     true,
		},
		{
			name:      "FastestUnderPriceAdmitsEqualPrice",
			objective: domain.ObjectiveFastest,
			maxPrice:  floatPtr(15),
			want:      domain.DeliveryQuote{AgentLocation: loc(1, 2), Transport: domain.TransportBike, Distance: 5, Price: 15, Time: 25},
			found:     true,
		},
		{
			name:      "PriceCeilingExcludesAll",
			objective: domain.ObjectiveFastest,
			maxPrice:  floatPtr(14.99),
		},
		{
			name:      "CheapestWithinTimeAdmitsEqualTime",
			objective: domain.ObjectiveCheapest,
			maxTime:   intPtr(18),
			want:      domain.DeliveryQuote{AgentLocation: loc(3, 3), Transport: domain.TransportCar, Distance: 6, Price: 30, Time: 18},
			found:     true,
		},
		{
			name:      "TimeCeilingExcludesAll",
			objective: domain.ObjectiveCheapest,
			maxTime:   intPtr(17),
		},
		{
			name:      "BothCeilingsZero",
			objective: domain.ObjectiveCheapest,
			maxPrice:  floatPtr(0),
			maxTime:   intPtr(0),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := distance.NewMockDistanceProvider(samplePairs())
			got, found, err := FindOptimalAgent(ctx, DispatchRequest{
				Pickup:    loc(1, 3),
				Dropoff:   loc(3, 1),
				MaxPrice:  tc.maxPrice,
				MaxTime:   tc.maxTime,
				Objective: tc.objective,
			}, g.Registry(), provider)

			require.NoError(t, err)
			assert.Equal(t, tc.found, found)
			if tc.found {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestFindOptimalAgentTieKeepsFirstRegistered(t *testing.T) {
	g := mustGrid(t, []string{
		"B.R.B",
		"..C..",
	})
	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: loc(0, 2), To: loc(1, 2), Steps: 1, Reachable: true},
		{From: loc(0, 0), To: loc(0, 2), Steps: 2, Reachable: true},
		{From: loc(0, 4), To: loc(0, 2), Steps: 2, Reachable: true},
	})

	for _, objective := range []domain.Objective{domain.ObjectiveCheapest, domain.ObjectiveFastest} {
		got, found, err := FindOptimalAgent(context.Background(), DispatchRequest{
			Pickup:    loc(0, 2),
			Dropoff:   loc(1, 2),
			Objective: objective,
		}, g.Registry(), provider)

		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, loc(0, 0), got.AgentLocation, "objective %s", objective)
		assert.Equal(t, 9.0, got.Price)
		assert.Equal(t, 15, got.Time)
	}
}

func TestFindOptimalAgentUnreachableDropoffLooksUpLegOnce(t *testing.T) {
	g := mustGrid(t, sampleLayout)
	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: loc(1, 3), To: loc(3, 1), Reachable: false},
	})

	_, found, err := FindOptimalAgent(context.Background(), DispatchRequest{
		Pickup:  loc(1, 3),
		Dropoff: loc(3, 1),
	}, g.Registry(), provider)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 1, provider.Calls)
}

func TestFindOptimalAgentSkipsUnreachableAgent(t *testing.T) {
	g := mustGrid(t, sampleLayout)
	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: loc(1, 3), To: loc(3, 1), Steps: 4, Reachable: true},
		{From: loc(1, 2), To: loc(1, 3), Reachable: false},
		{From: loc(3, 3), To: loc(1, 3), Steps: 2, Reachable: true},
	})

	got, found, err := FindOptimalAgent(context.Background(), DispatchRequest{
		Pickup:    loc(1, 3),
		Dropoff:   loc(3, 1),
		Objective: domain.ObjectiveCheapest,
	}, g.Registry(), provider)

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, loc(3, 3), got.AgentLocation)
	assert.Equal(t, 3, provider.Calls)
}

func TestFindOptimalAgentNoAgents(t *testing.T) {
	g := mustGrid(t, []string{"R.C"})
	provider := distance.NewMockDistanceProvider(nil)

	_, found, err := FindOptimalAgent(context.Background(), DispatchRequest{
		Pickup:  loc(0, 0),
		Dropoff: loc(0, 2),
	}, g.Registry(), provider)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, provider.Calls)
}

func TestFindOptimalAgentProviderError(t *testing.T) {
	g := mustGrid(t, sampleLayout)
	provider := distance.NewMockDistanceProvider(nil)

	_, _, err := FindOptimalAgent(context.Background(), DispatchRequest{
		Pickup:  loc(1, 3),
		Dropoff: loc(3, 1),
	}, g.Registry(), provider)

	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrNoAvailableAgent))
}

// On random maps the selected quote must respect the ceilings and be no worse
// than any other admitted agent, whichever lookup path the provider offers.
func TestFindOptimalAgentRandomMaps(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	ctx := context.Background()
	symbols := []byte{'.', '.', '.', '#', 'A', 'B'}

	for i := 0; i < 50; i++ {
		rows, cols := 4+r.Intn(5), 4+r.Intn(5)
		layout := make([]string, rows)
		for y := 0; y < rows; y++ {
			b := make([]byte, cols)
			for x := range b {
				b[x] = symbols[r.Intn(len(symbols))]
			}
			layout[y] = string(b)
		}
		pickup, dropoff := loc(0, 0), loc(rows-1, cols-1)
		layout[0] = "R" + layout[0][1:]
		layout[rows-1] = layout[rows-1][:cols-1] + "C"

		g := mustGrid(t, layout)
		provider, err := distance.NewGridDistanceProvider(g)
		require.NoError(t, err)

		maxPrice := floatPtr(float64(r.Intn(80)))
		maxTime := intPtr(r.Intn(80))

		for _, objective := range []domain.Objective{domain.ObjectiveCheapest, domain.ObjectiveFastest} {
			req := DispatchRequest{Pickup: pickup, Dropoff: dropoff, MaxPrice: maxPrice, MaxTime: maxTime, Objective: objective}
			got, found, err := FindOptimalAgent(ctx, req, g.Registry(), provider)
			require.NoError(t, err)

			leg, err := provider.GetDistance(ctx, pickup, dropoff)
			require.NoError(t, err)

			admitted := 0
			for _, a := range g.Registry().Agents() {
				d, err := provider.GetDistance(ctx, a.Location, pickup)
				require.NoError(t, err)
				if !d.Reachable || !leg.Reachable {
					continue
				}
				total := d.Steps + leg.Steps
				price, tm := a.Profile().Price(total), a.Profile().Time(total)
				if price > *maxPrice || tm > *maxTime {
					continue
				}
				admitted++
				if objective == domain.ObjectiveCheapest {
					assert.LessOrEqual(t, got.Price, price, "layout %v", layout)
				} else {
					assert.LessOrEqual(t, got.Time, tm, "layout %v", layout)
				}
			}

			assert.Equal(t, admitted > 0, found, "layout %v", layout)
			if found {
				assert.LessOrEqual(t, got.Price, *maxPrice)
				assert.LessOrEqual(t, got.Time, *maxTime)
			}
		}
	}
}
