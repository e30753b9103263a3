package events

import (
	"context"
	"encoding/json"
	"grid-dispatch-service/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() domain.DeliveryOrder {
	return domain.DeliveryOrder{
		ID:            "ord-1",
		Client:        domain.Location{Row: 3, Col: 1},
		Restaurant:    domain.Location{Row: 1, Col: 3},
		Agent:         domain.Location{Row: 1, Col: 2},
		Transport:     domain.TransportBike,
		FoodItem:      "Pizza",
		Price:         15,
		EstimatedTime: 25,
		CreatedAt:     time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestRedisOrderPublisherPublishes(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pub, err := NewRedisOrderPublisher("redis://"+mr.Addr(), "orders:test")
	require.NoError(t, err)
	defer pub.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	sub := rdb.Subscribe(ctx, "orders:test")
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, pub.Publish(ctx, sampleOrder()))

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var evt orderEvent
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &evt))
	assert.Equal(t, "order.dispatched", evt.Type)
	assert.Equal(t, "ord-1", evt.OrderID)
	assert.Equal(t, point{Row: 1, Col: 2}, evt.Agent)
	assert.Equal(t, "BIKE", evt.Transport)
	assert.Equal(t, 15.0, evt.Price)
	assert.Equal(t, 25, evt.EstimatedTime)
}

func TestRedisOrderPublisherServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	pub, err := NewRedisOrderPublisher("redis://"+mr.Addr(), "orders:test")
	require.NoError(t, err)
	defer pub.Close()
	mr.Close()

	start := time.Now()
	assert.Error(t, pub.Publish(context.Background(), sampleOrder()))
	assert.Less(t, time.Since(start), defaultPublishTimeout+time.Second)
}

func TestRedisOrderPublisherDeadlineCapsRetries(t *testing.T) {
	mr := miniredis.RunT(t)
	pub, err := NewRedisOrderPublisher("redis://"+mr.Addr(), "orders:test")
	require.NoError(t, err)
	defer pub.Close()
	mr.Close()

	pub.timeout = 150 * time.Millisecond

	start := time.Now()
	err = pub.Publish(context.Background(), sampleOrder())
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewRedisOrderPublisherValidation(t *testing.T) {
	_, err := NewRedisOrderPublisher("not a url", "orders")
	assert.Error(t, err)

	_, err = NewRedisOrderPublisher("redis://localhost:6379", " ")
	assert.Error(t, err)
}

func TestLogOrderPublisher(t *testing.T) {
	assert.NoError(t, LogOrderPublisher{}.Publish(context.Background(), sampleOrder()))
}
