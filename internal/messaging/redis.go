package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"moto-rental-backend/internal/logger"
)

// RedisBroker implements Publisher and Consumer over redis pub/sub.
type RedisBroker struct {
	rdb *redis.Client
}

func NewRedisBroker(rdb *redis.Client) *RedisBroker {
	return &RedisBroker{rdb: rdb}
}

func (b *RedisBroker) Publish(ctx context.Context, channel string, message any) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message for channel %s: %w", channel, err)
	}

	logger.ExternalServiceCall("redis", "PUBLISH", "channel", channel)
	err = b.rdb.Publish(ctx, channel, payload).Err()
	logger.ExternalServiceResult("redis", "PUBLISH", err, "channel", channel)
	return err
}

// StartConsuming blocks until ctx is cancelled, dispatching each
// message on the channel to handle.
func (b *RedisBroker) StartConsuming(ctx context.Context, channel string, handle func(ctx context.Context, payload []byte) error) error {
	sub := b.rdb.Subscribe(ctx, channel)
	defer sub.Close()

	// Wait for the subscription to be confirmed before consuming.
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}
	logger.Info("Consuming messages", "channel", channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if err := handle(ctx, []byte(msg.Payload)); err != nil {
				logger.Error("Message handler failed", "channel", channel, "error", err)
			}
		}
	}
}

func (b *RedisBroker) Close() error {
	return b.rdb.Close()
}
