package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moto-rental-backend/internal/domain"
)

func newTestBroker(t *testing.T) *RedisBroker {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisBroker(rdb)
}

func TestRedisBroker_PublishConsumeRoundTrip(t *testing.T) {
	broker := newTestBroker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	received := make(chan []byte, 1)
	ready := make(chan struct{})
	go func() {
		close(ready)
		_ = broker.StartConsuming(ctx, "moto.registered", func(_ context.Context, payload []byte) error {
			received <- payload
			return nil
		})
	}()
	<-ready
	// Give the subscription a moment to be confirmed.
	time.Sleep(50 * time.Millisecond)

	event := &domain.MotoRegisteredEvent{
		Identifier:   "moto-1",
		Year:         2024,
		Model:        "CG 160",
		LicensePlate: "ABC1D23",
		NotifiedAt:   time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, broker.Publish(ctx, "moto.registered", event))

	select {
	case payload := <-received:
		decoded, err := DecodeMotoRegistered(payload)
		require.NoError(t, err)
		assert.Equal(t, event.Identifier, decoded.Identifier)
		assert.Equal(t, event.Year, decoded.Year)
		assert.Equal(t, event.LicensePlate, decoded.LicensePlate)
	case <-ctx.Done():
		t.Fatal("timed out waiting for published event")
	}
}

func TestRedisBroker_ConsumerStopsOnContextCancel(t *testing.T) {
	broker := newTestBroker(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- broker.StartConsuming(ctx, "moto.registered", func(context.Context, []byte) error { return nil })
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}
}

func TestDecodeMotoRegistered_BadPayload(t *testing.T) {
	_, err := DecodeMotoRegistered([]byte("not json"))
	assert.Error(t, err)
}
