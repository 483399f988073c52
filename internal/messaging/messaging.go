package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"moto-rental-backend/internal/domain"
)

// Publisher sends domain events to the message broker. Publishing is
// fire-and-forget relative to the domain write: callers log failures
// and never roll back.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) error
	Close() error
}

// Consumer receives domain events from the broker. Handle is invoked
// once per message; a handler error is logged and the message dropped
// (redelivery is the broker collaborator's concern, not the core's).
type Consumer interface {
	StartConsuming(ctx context.Context, channel string, handle func(ctx context.Context, payload []byte) error) error
	Close() error
}

// DecodeMotoRegistered parses a motorcycle registration event payload.
func DecodeMotoRegistered(payload []byte) (*domain.MotoRegisteredEvent, error) {
	var event domain.MotoRegisteredEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("decode moto registered event: %w", err)
	}
	return &event, nil
}
