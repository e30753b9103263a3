package domain

import "errors"

// Sentinel errors for map construction and order handling.
// Callers attach detail with fmt.Errorf("...: %w", err) and branch with errors.Is.
var (
	// Construction-time: unknown symbol, ragged or empty layout.
	ErrMalformedLayout = errors.New("malformed layout")
	// Construction-time: negative row or column.
	ErrInvalidLocation = errors.New("invalid location")
	// Lookup outside [0,rows)x[0,cols).
	ErrOutOfBounds = errors.New("location out of bounds")

	// Request validation: wrong entity at pickup/dropoff or missing food item.
	ErrInvalidOrder = errors.New("invalid order")
	// Request validation: negative price or time ceiling, unknown objective.
	ErrInvalidOrderParameter = errors.New("invalid order parameter")

	// Availability: no agent satisfies reachability and ceiling constraints.
	ErrNoAvailableAgent = errors.New("no available agent")
)
