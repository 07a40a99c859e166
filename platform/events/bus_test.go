package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"leadintake/platform/logger"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func newEvent(name string) testEvent {
	return testEvent{BaseEvent: NewBaseEvent(), name: name}
}

func TestPublishSyncInvokesSubscribedHandlers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var calls int
	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error {
		calls++
		return nil
	}))
	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error {
		calls++
		return nil
	}))

	if err := bus.PublishSync(context.Background(), newEvent("thing.happened")); err != nil {
		t.Fatalf("PublishSync returned error: %v", err)
	}
	if calls != 2 {
		t.Errorf("handler calls = %d, want 2", calls)
	}
}

func TestPublishSyncReturnsFirstHandlerError(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	first := errors.New("first failure")
	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error {
		return first
	}))
	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error {
		return errors.New("second failure")
	}))

	if err := bus.PublishSync(context.Background(), newEvent("thing.happened")); !errors.Is(err, first) {
		t.Errorf("PublishSync error = %v, want first failure", err)
	}
}

func TestPublishSyncIgnoresOtherEventNames(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	called := false
	bus.Subscribe("other.event", HandlerFunc(func(context.Context, Event) error {
		called = true
		return nil
	}))

	if err := bus.PublishSync(context.Background(), newEvent("thing.happened")); err != nil {
		t.Fatalf("PublishSync returned error: %v", err)
	}
	if called {
		t.Error("handler for a different event name must not run")
	}
}

func TestPublishRunsHandlersAsynchronously(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var wg sync.WaitGroup
	wg.Add(2)
	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error {
		wg.Done()
		return nil
	}))
	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error {
		wg.Done()
		return nil
	}))

	bus.Publish(context.Background(), newEvent("thing.happened"))

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handlers did not run within the deadline")
	}
}

func TestPublishSurvivesHandlerPanic(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var wg sync.WaitGroup
	wg.Add(2)
	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error {
		defer wg.Done()
		panic("boom")
	}))
	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error {
		wg.Done()
		return nil
	}))

	bus.Publish(context.Background(), newEvent("thing.happened"))

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handlers did not run within the deadline")
	}
}
