package ports

import (
	"context"
	"grid-dispatch-service/internal/domain"
)

// Port: announces dispatched orders to downstream consumers.
type OrderPublisher interface {
	Publish(ctx context.Context, order domain.DeliveryOrder) error
}
