package telemetry

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/socwire-project/socwire/internal/events"
)

// KindStat is one kind's decode counter.
type KindStat struct {
	TypeID int    `json:"type"`
	Kind   string `json:"kind"`
	Count  int64  `json:"count"`
}

// StatsSnapshot is a point-in-time copy of the decode counters.
type StatsSnapshot struct {
	UptimeSec     int64      `json:"uptime_sec"`
	Decoded       int64      `json:"decoded"`
	Failed        int64      `json:"failed"`
	ActiveClients int        `json:"active_clients"`
	Kinds         []KindStat `json:"kinds"`
}

// Collector keeps in-memory decode statistics, fed from the event bus.
// The API's stats endpoint and the MQTT publisher both read from it.
type Collector struct {
	mu        sync.Mutex
	startedAt time.Time
	decoded   int64
	failed    int64
	clients   int
	perKind   map[int]*KindStat
}

// NewCollector creates a collector and subscribes it to the bus.
func NewCollector(eventBus *events.EventBus) *Collector {
	c := &Collector{
		startedAt: time.Now(),
		perKind:   make(map[int]*KindStat),
	}

	eventBus.Subscribe(events.EventMessageDecoded, "stats.decoded", c.onDecoded)
	eventBus.Subscribe(events.EventDecodeFailed, "stats.failed", c.onFailed)
	eventBus.Subscribe(events.EventClientConnected, "stats.connect", c.onConnect)
	eventBus.Subscribe(events.EventClientDisconnected, "stats.disconnect", c.onDisconnect)

	return c
}

func (c *Collector) onDecoded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.MessageDecodedPayload)
	if !ok {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.decoded++
	ks, ok := c.perKind[payload.TypeID]
	if !ok {
		ks = &KindStat{TypeID: payload.TypeID, Kind: payload.Kind}
		c.perKind[payload.TypeID] = ks
	}
	ks.Count++
	return nil
}

func (c *Collector) onFailed(ctx context.Context, event events.Event) error {
	c.mu.Lock()
	c.failed++
	c.mu.Unlock()
	return nil
}

func (c *Collector) onConnect(ctx context.Context, event events.Event) error {
	c.mu.Lock()
	c.clients++
	c.mu.Unlock()
	return nil
}

func (c *Collector) onDisconnect(ctx context.Context, event events.Event) error {
	c.mu.Lock()
	if c.clients > 0 {
		c.clients--
	}
	c.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current counters, kinds ordered by
// count descending.
func (c *Collector) Snapshot() StatsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := StatsSnapshot{
		UptimeSec:     int64(time.Since(c.startedAt).Seconds()),
		Decoded:       c.decoded,
		Failed:        c.failed,
		ActiveClients: c.clients,
		Kinds:         make([]KindStat, 0, len(c.perKind)),
	}
	for _, ks := range c.perKind {
		snap.Kinds = append(snap.Kinds, *ks)
	}
	sort.Slice(snap.Kinds, func(i, j int) bool {
		if snap.Kinds[i].Count != snap.Kinds[j].Count {
			return snap.Kinds[i].Count > snap.Kinds[j].Count
		}
		return snap.Kinds[i].TypeID < snap.Kinds[j].TypeID
	})
	return snap
}
