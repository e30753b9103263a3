package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"grid-dispatch-service/internal/domain"
	"grid-dispatch-service/internal/platform/obs"
	"net"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// RedisOrderPublisher announces dispatched orders over Redis Pub/Sub.
// Safe for concurrent use.
type RedisOrderPublisher struct {
	rdb     *redis.Client
	channel string
	// timeout bounds one whole Publish call, retries included.
	timeout time.Duration
}

const defaultPublishTimeout = 2 * time.Second

func NewRedisOrderPublisher(url string, channel string) (*RedisOrderPublisher, error) {
	if strings.TrimSpace(channel) == "" {
		return nil, errors.New("redis order publisher: channel is empty")
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis order publisher: parse url: %w", err)
	}

	// Retries are done by publishWithRetry; the client must not add its own.
	opt.MaxRetries = -1
	opt.DialTimeout = 500 * time.Millisecond

	return &RedisOrderPublisher{
		rdb:     redis.NewClient(opt),
		channel: channel,
		timeout: defaultPublishTimeout,
	}, nil
}

// Publish sends one JSON event per order. Transient network failures are
// retried with exponential backoff until p.timeout elapses or ctx ends.
func (p *RedisOrderPublisher) Publish(ctx context.Context, o domain.DeliveryOrder) (err error) {
	defer obs.Time(ctx, "events.Publish")(&err)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	data, err := json.Marshal(newOrderEvent(o))
	if err != nil {
		return fmt.Errorf("publish order %s: encode: %w", o.ID, err)
	}

	if err := p.publishWithRetry(ctx, data); err != nil {
		return fmt.Errorf("publish order %s: %w", o.ID, err)
	}
	return nil
}

func (p *RedisOrderPublisher) publishWithRetry(ctx context.Context, data []byte) error {
	const maxAttempts = 3
	backoff := 100 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := p.rdb.Publish(ctx, p.channel, data).Err()
		if err == nil {
			return nil
		}
		lastErr = err

		var netErr net.Error
		if !errors.As(err, &netErr) || attempt == maxAttempts {
			return lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return lastErr
}

func (p *RedisOrderPublisher) Close() error { return p.rdb.Close() }
