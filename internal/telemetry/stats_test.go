package telemetry

import (
	"context"
	"testing"

	"github.com/socwire-project/socwire/internal/events"
)

func decodedEvent(typeID int, kind string) events.Event {
	return events.Event{
		Type:   events.EventMessageDecoded,
		Source: "test",
		Payload: events.MessageDecodedPayload{
			TypeID: typeID,
			Kind:   kind,
			Line:   "x",
		},
	}
}

func TestCollectorCounters(t *testing.T) {
	bus := events.NewEventBus()
	defer bus.Stop()
	c := NewCollector(bus)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		bus.EmitSync(ctx, decodedEvent(1026, "SOCPutPiece"))
	}
	bus.EmitSync(ctx, decodedEvent(1028, "SOCDiceResult"))
	bus.EmitSync(ctx, events.Event{Type: events.EventDecodeFailed, Source: "test"})

	snap := c.Snapshot()
	if snap.Decoded != 4 {
		t.Errorf("Decoded = %d, want 4", snap.Decoded)
	}
	if snap.Failed != 1 {
		t.Errorf("Failed = %d, want 1", snap.Failed)
	}
	if len(snap.Kinds) != 2 {
		t.Fatalf("Kinds has %d entries, want 2", len(snap.Kinds))
	}
	// Ordered by count descending
	if snap.Kinds[0].TypeID != 1026 || snap.Kinds[0].Count != 3 {
		t.Errorf("top kind = %+v, want PUTPIECE x3", snap.Kinds[0])
	}
	if snap.Kinds[1].TypeID != 1028 || snap.Kinds[1].Count != 1 {
		t.Errorf("second kind = %+v, want DICERESULT x1", snap.Kinds[1])
	}
}

func TestCollectorTiesOrderByTypeID(t *testing.T) {
	bus := events.NewEventBus()
	defer bus.Stop()
	c := NewCollector(bus)

	ctx := context.Background()
	bus.EmitSync(ctx, decodedEvent(1060, "SOCRejectOffer"))
	bus.EmitSync(ctx, decodedEvent(1041, "SOCTurn"))

	snap := c.Snapshot()
	if len(snap.Kinds) != 2 {
		t.Fatalf("Kinds has %d entries, want 2", len(snap.Kinds))
	}
	if snap.Kinds[0].TypeID != 1041 || snap.Kinds[1].TypeID != 1060 {
		t.Errorf("tie order = [%d, %d], want [1041, 1060]",
			snap.Kinds[0].TypeID, snap.Kinds[1].TypeID)
	}
}

func TestCollectorClientGauge(t *testing.T) {
	bus := events.NewEventBus()
	defer bus.Stop()
	c := NewCollector(bus)

	ctx := context.Background()
	connect := events.Event{Type: events.EventClientConnected, Source: "test"}
	disconnect := events.Event{Type: events.EventClientDisconnected, Source: "test"}

	bus.EmitSync(ctx, connect)
	bus.EmitSync(ctx, connect)
	bus.EmitSync(ctx, disconnect)

	if got := c.Snapshot().ActiveClients; got != 1 {
		t.Errorf("ActiveClients = %d, want 1", got)
	}

	// Gauge never goes negative.
	bus.EmitSync(ctx, disconnect)
	bus.EmitSync(ctx, disconnect)
	if got := c.Snapshot().ActiveClients; got != 0 {
		t.Errorf("ActiveClients = %d, want 0", got)
	}
}

func TestCollectorIgnoresMalformedPayload(t *testing.T) {
	bus := events.NewEventBus()
	defer bus.Stop()
	c := NewCollector(bus)

	bus.EmitSync(context.Background(), events.Event{
		Type:    events.EventMessageDecoded,
		Payload: "not a payload struct",
	})

	if got := c.Snapshot().Decoded; got != 0 {
		t.Errorf("Decoded = %d, want 0", got)
	}
}
