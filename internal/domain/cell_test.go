package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCellTypeSymbols(t *testing.T) {
	cases := map[rune]CellType{
		'#': CellWall,
		'.': CellRoad,
		'C': CellClient,
		'R': CellRestaurant,
		'A': CellAgentCar,
		'B': CellAgentBike,
	}
	for symbol, want := range cases {
		got, err := ParseCellType(symbol)
		require.NoError(t, err, "symbol %q", symbol)
		assert.Equal(t, want, got)
		assert.Equal(t, symbol, got.Symbol())
	}

	_, err := ParseCellType('x')
	assert.ErrorIs(t, err, ErrMalformedLayout)
}

func TestCellTypeTransportClass(t *testing.T) {
	class, ok := CellAgentCar.TransportClass()
	assert.True(t, ok)
	assert.Equal(t, TransportCar, class)

	class, ok = CellAgentBike.TransportClass()
	assert.True(t, ok)
	assert.Equal(t, TransportBike, class)

	_, ok = CellRestaurant.TransportClass()
	assert.False(t, ok)
	assert.False(t, CellRoad.IsAgent())
	assert.True(t, CellAgentBike.IsAgent())
}

func TestTransportProfiles(t *testing.T) {
	car := TransportCar.Profile()
	assert.Equal(t, 5.0, car.CostPerUnit)
	assert.Equal(t, 3, car.TimePerUnit)
	assert.Equal(t, 30.0, car.Price(6))
	assert.Equal(t, 18, car.Time(6))

	bike := TransportBike.Profile()
	assert.Equal(t, 3.0, bike.CostPerUnit)
	assert.Equal(t, 5, bike.TimePerUnit)
	assert.Equal(t, 15.0, bike.Price(5))
	assert.Equal(t, 25, bike.Time(5))
}

func TestNewLocation(t *testing.T) {
	loc, err := NewLocation(2, 3)
	require.NoError(t, err)
	assert.Equal(t, Location{Row: 2, Col: 3}, loc)

	_, err = NewLocation(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidLocation)
	_, err = NewLocation(0, -4)
	assert.ErrorIs(t, err, ErrInvalidLocation)
}

func TestParseObjective(t *testing.T) {
	o, err := ParseObjective("Cheapest")
	require.NoError(t, err)
	assert.Equal(t, ObjectiveCheapest, o)

	o, err = ParseObjective(" fastest ")
	require.NoError(t, err)
	assert.Equal(t, ObjectiveFastest, o)

	_, err = ParseObjective("scenic")
	assert.ErrorIs(t, err, ErrInvalidOrderParameter)
}

func TestObjectiveValid(t *testing.T) {
	assert.True(t, ObjectiveCheapest.Valid())
	assert.True(t, ObjectiveFastest.Valid())
	assert.False(t, Objective(7).Valid())
	assert.Equal(t, "unknown", Objective(7).String())
}
