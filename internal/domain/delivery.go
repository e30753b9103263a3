package domain

import (
	"fmt"
	"strings"
	"time"
)

// Selection objective for dispatch.
type Objective int

const (
	ObjectiveCheapest Objective = iota
	ObjectiveFastest
)

// ParseObjective accepts "cheapest" or "fastest", case-insensitively.
func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cheapest":
		return ObjectiveCheapest, nil
	case "fastest":
		return ObjectiveFastest, nil
	default:
		return 0, fmt.Errorf("parse objective %q: %w", s, ErrInvalidOrderParameter)
	}
}

func (o Objective) String() string {
	switch o {
	case ObjectiveCheapest:
		return "cheapest"
	case ObjectiveFastest:
		return "fastest"
	default:
		return "unknown"
	}
}

func (o Objective) Valid() bool { return o == ObjectiveCheapest || o == ObjectiveFastest }

// Computed price/time for one feasible agent route. Produced per request.
type DeliveryQuote struct {
	AgentLocation Location
	Transport     TransportClass
	Distance      int
	Price         float64
	Time          int
}

// Represents a dispatched delivery. Built once on success and never mutated.
type DeliveryOrder struct {
	ID            string
	Client        Location
	Restaurant    Location
	Agent         Location
	Transport     TransportClass
	FoodItem      string
	Price         float64
	EstimatedTime int
	CreatedAt     time.Time
}
