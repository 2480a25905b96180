package util

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBusDeliversToEverySubscriber(t *testing.T) {
	bus := NewEventBus()
	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		bus.Subscribe(EventPostPublished, func(_ context.Context, e Event) error {
			assert.Equal(t, "p1", e.Payload)
			calls.Add(1)
			return nil
		})
	}

	bus.Publish(context.Background(), EventPostPublished, "p1")
	bus.Wait()
	assert.Equal(t, int32(3), calls.Load())
}

func TestEventBusHandlersOutliveRequestContext(t *testing.T) {
	bus := NewEventBus()
	var ctxErr error
	bus.Subscribe(EventPostPublished, func(ctx context.Context, _ Event) error {
		ctxErr = ctx.Err()
		return errors.New("handler failure is only logged")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, EventPostPublished, nil)
	bus.Wait()
	assert.NoError(t, ctxErr)
}

func TestEventBusWithoutSubscribers(t *testing.T) {
	bus := NewEventBus()
	bus.Publish(context.Background(), "unknown", nil)
	bus.Wait()
}
