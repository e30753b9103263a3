package services

import (
	"context"
	"errors"
	"fmt"
	"grid-dispatch-service/internal/domain"
	"grid-dispatch-service/internal/platform/metrics"
	"grid-dispatch-service/internal/ports"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
)

// OrderRequest is a client delivery request as received at the service boundary.
type OrderRequest struct {
	Pickup    domain.Location
	Dropoff   domain.Location
	FoodItem  string
	MaxPrice  *float64
	MaxTime   *int
	Objective domain.Objective
}

// OrderService validates delivery requests against the map, runs the
// optimizer and builds the resulting order. It holds no per-request state.
type OrderService struct {
	grid      *domain.Grid
	provider  ports.DistanceProvider
	publisher ports.OrderPublisher
	now       func() time.Time
}

// NewOrderService wires the façade. publisher may be nil.
func NewOrderService(grid *domain.Grid, provider ports.DistanceProvider, publisher ports.OrderPublisher) (*OrderService, error) {
	if grid == nil {
		return nil, errors.New("new order service: grid is nil")
	}
	if provider == nil {
		return nil, errors.New("new order service: distance provider is nil")
	}

	return &OrderService{
		grid:      grid,
		provider:  provider,
		publisher: publisher,
		now:       time.Now,
	}, nil
}

// Grid exposes the read-only map the service dispatches on.
func (s *OrderService) Grid() *domain.Grid { return s.grid }

func (s *OrderService) CheapestDelivery(ctx context.Context, pickup, dropoff domain.Location, foodItem string) (domain.DeliveryOrder, error) {
	return s.PlaceOrder(ctx, OrderRequest{
		Pickup: pickup, Dropoff: dropoff, FoodItem: foodItem,
		Objective: domain.ObjectiveCheapest,
	})
}

func (s *OrderService) FastestDelivery(ctx context.Context, pickup, dropoff domain.Location, foodItem string) (domain.DeliveryOrder, error) {
	return s.PlaceOrder(ctx, OrderRequest{
		Pickup: pickup, Dropoff: dropoff, FoodItem: foodItem,
		Objective: domain.ObjectiveFastest,
	})
}

func (s *OrderService) FastestDeliveryUnderPrice(ctx context.Context, pickup, dropoff domain.Location, foodItem string, maxPrice float64) (domain.DeliveryOrder, error) {
	return s.PlaceOrder(ctx, OrderRequest{
		Pickup: pickup, Dropoff: dropoff, FoodItem: foodItem,
		MaxPrice:  &maxPrice,
		Objective: domain.ObjectiveFastest,
	})
}

func (s *OrderService) CheapestDeliveryWithinTime(ctx context.Context, pickup, dropoff domain.Location, foodItem string, maxTime int) (domain.DeliveryOrder, error) {
	return s.PlaceOrder(ctx, OrderRequest{
		Pickup: pickup, Dropoff: dropoff, FoodItem: foodItem,
		MaxTime:   &maxTime,
		Objective: domain.ObjectiveCheapest,
	})
}

// PlaceOrder validates req, selects an agent and returns the new order.
//
// Errors wrap domain.ErrInvalidOrder or domain.ErrInvalidOrderParameter for
// caller mistakes and domain.ErrNoAvailableAgent when nobody can take the order.
func (s *OrderService) PlaceOrder(ctx context.Context, req OrderRequest) (_ domain.DeliveryOrder, err error) {
	objective := req.Objective.String()
	start := s.now()
	defer func() {
		metrics.DispatchRequests.WithLabelValues(objective, outcome(err)).Inc()
	}()

	if err := s.validate(req); err != nil {
		return domain.DeliveryOrder{}, fmt.Errorf("place order: %w", err)
	}

	quote, ok, err := FindOptimalAgent(ctx, DispatchRequest{
		Pickup:    req.Pickup,
		Dropoff:   req.Dropoff,
		MaxPrice:  req.MaxPrice,
		MaxTime:   req.MaxTime,
		Objective: req.Objective,
	}, s.grid.Registry(), s.provider)
	metrics.DispatchDuration.WithLabelValues(objective).Observe(s.now().Sub(start).Seconds())
	if err != nil {
		return domain.DeliveryOrder{}, fmt.Errorf("place order: %w", err)
	}
	if !ok {
		return domain.DeliveryOrder{}, fmt.Errorf(
			"place order: %s delivery %s -> %s: %w",
			objective, req.Pickup, req.Dropoff, domain.ErrNoAvailableAgent,
		)
	}

	order := domain.DeliveryOrder{
		ID:            uuid.NewString(),
		Client:        req.Dropoff,
		Restaurant:    req.Pickup,
		Agent:         quote.AgentLocation,
		Transport:     quote.Transport,
		FoodItem:      req.FoodItem,
		Price:         quote.Price,
		EstimatedTime: quote.Time,
		CreatedAt:     s.now().UTC(),
	}

	// Publishing is a notification; the order stands even if it fails.
	if s.publisher != nil {
		if perr := s.publisher.Publish(ctx, order); perr != nil {
			log.Printf("publish order failed: order_id=%s err=%v", order.ID, perr)
		}
	}

	return order, nil
}

func (s *OrderService) validate(req OrderRequest) error {
	if req.FoodItem == "" {
		return fmt.Errorf("food item must be provided: %w", domain.ErrInvalidOrder)
	}

	if err := s.expectCell(req.Pickup, domain.CellRestaurant, "pickup"); err != nil {
		return err
	}
	if err := s.expectCell(req.Dropoff, domain.CellClient, "dropoff"); err != nil {
		return err
	}

	if req.MaxPrice != nil && (*req.MaxPrice < 0 || math.IsNaN(*req.MaxPrice)) {
		return fmt.Errorf("max price %g must be a non-negative number: %w", *req.MaxPrice, domain.ErrInvalidOrderParameter)
	}
	if req.MaxTime != nil && *req.MaxTime < 0 {
		return fmt.Errorf("max time %d cannot be negative: %w", *req.MaxTime, domain.ErrInvalidOrderParameter)
	}

	if !req.Objective.Valid() {
		return fmt.Errorf("objective %s: %w", req.Objective, domain.ErrInvalidOrderParameter)
	}

	return nil
}

func (s *OrderService) expectCell(loc domain.Location, want domain.CellType, role string) error {
	cell, err := s.grid.CellAt(loc)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", role, domain.ErrInvalidOrder, err)
	}
	if cell.Type != want {
		return fmt.Errorf("%s %s is a %s, want %s: %w", role, loc, cell.Type, want, domain.ErrInvalidOrder)
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidOrder), errors.Is(err, domain.ErrInvalidOrderParameter):
		return "invalid"
	case errors.Is(err, domain.ErrNoAvailableAgent):
		return "unavailable"
	default:
		return "error"
	}
}
