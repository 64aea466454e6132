package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestEmitSyncRunsAllHandlers(t *testing.T) {
	bus := NewEventBus()
	defer bus.Stop()

	var calls int64
	for _, name := range []string{"a", "b", "c"} {
		bus.Subscribe(EventMessageDecoded, name, func(ctx context.Context, e Event) error {
			atomic.AddInt64(&calls, 1)
			return nil
		})
	}

	if got := bus.HandlerCount(EventMessageDecoded); got != 3 {
		t.Fatalf("HandlerCount = %d, want 3", got)
	}

	if err := bus.EmitSync(context.Background(), Event{Type: EventMessageDecoded, Source: "test"}); err != nil {
		t.Fatalf("EmitSync: %v", err)
	}
	if got := atomic.LoadInt64(&calls); got != 3 {
		t.Fatalf("handlers called %d times, want 3", got)
	}
}

func TestEmitSyncReturnsHandlerError(t *testing.T) {
	bus := NewEventBus()
	defer bus.Stop()

	wantErr := errors.New("handler failed")
	bus.Subscribe(EventDecodeFailed, "failing", func(ctx context.Context, e Event) error {
		return wantErr
	})

	if err := bus.EmitSync(context.Background(), Event{Type: EventDecodeFailed}); err != wantErr {
		t.Fatalf("EmitSync error = %v, want %v", err, wantErr)
	}
}

func TestEmitSyncRecoversPanic(t *testing.T) {
	bus := NewEventBus()
	defer bus.Stop()

	bus.Subscribe(EventShutdown, "panicky", func(ctx context.Context, e Event) error {
		panic("boom")
	})

	// Must not propagate the panic.
	if err := bus.EmitSync(context.Background(), Event{Type: EventShutdown}); err != nil {
		t.Fatalf("EmitSync: %v", err)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	defer bus.Stop()

	var calls int64
	bus.Subscribe(EventClientConnected, "keep", func(ctx context.Context, e Event) error {
		atomic.AddInt64(&calls, 1)
		return nil
	})
	bus.Subscribe(EventClientConnected, "drop", func(ctx context.Context, e Event) error {
		atomic.AddInt64(&calls, 100)
		return nil
	})

	bus.Unsubscribe(EventClientConnected, "drop")
	if got := bus.HandlerCount(EventClientConnected); got != 1 {
		t.Fatalf("HandlerCount after Unsubscribe = %d, want 1", got)
	}

	bus.EmitSync(context.Background(), Event{Type: EventClientConnected})
	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestEmitAsyncDelivers(t *testing.T) {
	bus := NewEventBus()

	done := make(chan Event, 1)
	bus.Subscribe(EventMessageDecoded, "async", func(ctx context.Context, e Event) error {
		done <- e
		return nil
	})

	payload := MessageDecodedPayload{TypeID: 1000, Kind: "SOCNullMessage"}
	bus.Emit(context.Background(), Event{Type: EventMessageDecoded, Source: "test", Payload: payload})

	select {
	case e := <-done:
		got, ok := e.Payload.(MessageDecodedPayload)
		if !ok || got.TypeID != 1000 {
			t.Fatalf("payload = %#v", e.Payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler not invoked")
	}

	bus.Stop()
}

func TestEmitAfterStopIsNoop(t *testing.T) {
	bus := NewEventBus()

	var calls int64
	bus.Subscribe(EventShutdown, "late", func(ctx context.Context, e Event) error {
		atomic.AddInt64(&calls, 1)
		return nil
	})

	bus.Stop()

	select {
	case <-bus.StopCh():
	default:
		t.Fatal("StopCh not closed after Stop")
	}

	bus.Emit(context.Background(), Event{Type: EventShutdown})
	if err := bus.EmitSync(context.Background(), Event{Type: EventShutdown}); err != nil {
		t.Fatalf("EmitSync after Stop: %v", err)
	}
	if got := atomic.LoadInt64(&calls); got != 0 {
		t.Fatalf("handler called %d times after Stop, want 0", got)
	}
}
