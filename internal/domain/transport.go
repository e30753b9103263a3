package domain

// Agent transport class. The set is closed; each class owns a fixed profile.
type TransportClass string

const (
	TransportCar  TransportClass = "CAR"
	TransportBike TransportClass = "BIKE"
)

// Per-class price and time for a single grid step.
type TransportProfile struct {
	CostPerUnit float64
	TimePerUnit int
}

var transportProfiles = map[TransportClass]TransportProfile{
	TransportCar:  {CostPerUnit: 5.0, TimePerUnit: 3},
	TransportBike: {CostPerUnit: 3.0, TimePerUnit: 5},
}

// Profile returns the fixed cost/time table entry for the class.
// Unknown classes yield the zero profile.
func (c TransportClass) Profile() TransportProfile {
	return transportProfiles[c]
}

// Price of travelling distance steps. Floating point, no rounding.
func (p TransportProfile) Price(distance int) float64 {
	return float64(distance) * p.CostPerUnit
}

// Time of travelling distance steps, in whole units.
func (p TransportProfile) Time(distance int) int {
	return distance * p.TimePerUnit
}
