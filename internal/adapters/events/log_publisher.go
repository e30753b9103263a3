package events

import (
	"context"
	"grid-dispatch-service/internal/domain"
	"grid-dispatch-service/internal/platform/obs"
	"log"
)

// LogOrderPublisher writes dispatched orders to the process log.
// Used when no broker is configured.
type LogOrderPublisher struct{}

func (LogOrderPublisher) Publish(ctx context.Context, o domain.DeliveryOrder) error {
	log.Printf(
		"req_id=%s order dispatched: order_id=%s restaurant=%s client=%s agent=%s transport=%s price=%.2f eta=%d",
		obs.RequestID(ctx), o.ID, o.Restaurant, o.Client, o.Agent, o.Transport, o.Price, o.EstimatedTime,
	)
	return nil
}
