package events

import (
	"context"
	"testing"
	"time"

	"lotofacil/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestTransactionalBus_FlushDeliversPendingEvents(t *testing.T) {
	bus := NewBus()
	transactionalBus := NewTransactionalBus(bus)

	received := make(chan DrawStoredEvent, 1)
	bus.Subscribe(EventTypeDrawStored, func(ctx context.Context, event Event) {
		if drawEvent, ok := event.(DrawStoredEvent); ok {
			received <- drawEvent
		}
	})

	transactionalBus.Publish(DrawStoredEvent{ContestID: 3100, Numbers: entities.NewNumberSet(1, 2, 3)})

	select {
	case <-received:
		t.Fatal("event delivered before flush")
	case <-time.After(50 * time.Millisecond):
	}

	transactionalBus.Flush()

	select {
	case event := <-received:
		assert.Equal(t, 3100, event.ContestID)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered after flush")
	}
}

func TestTransactionalBus_DiscardDropsEvents(t *testing.T) {
	bus := NewBus()
	transactionalBus := NewTransactionalBus(bus)

	received := make(chan Event, 1)
	bus.Subscribe(EventTypeDrawStored, func(ctx context.Context, event Event) {
		received <- event
	})

	transactionalBus.Publish(DrawStoredEvent{ContestID: 1})
	transactionalBus.Discard()
	transactionalBus.Flush()

	select {
	case <-received:
		t.Fatal("discarded event was delivered")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_RecoversFromPanickingHandler(t *testing.T) {
	bus := NewBus()

	done := make(chan struct{})
	bus.Subscribe(EventTypeDrawStored, func(ctx context.Context, event Event) { panic("boom") })
	bus.Subscribe(EventTypeDrawStored, func(ctx context.Context, event Event) { close(done) })

	bus.Publish(DrawStoredEvent{ContestID: 2})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("second handler did not run")
	}
}
