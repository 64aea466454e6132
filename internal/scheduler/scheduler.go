// Package scheduler runs socwire's periodic background tasks: message
// log pruning, stale relay connection cleanup, and a stats heartbeat.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/socwire-project/socwire/internal/config"
	"github.com/socwire-project/socwire/internal/db"
	"github.com/socwire-project/socwire/internal/network"
	"github.com/socwire-project/socwire/internal/telemetry"
)

const (
	staleCheckInterval = 5 * time.Minute
	heartbeatInterval  = 10 * time.Minute
)

// Scheduler manages periodic background tasks.
type Scheduler struct {
	cfg      *config.Config
	store    *db.MessageStore
	registry *network.ConnectionRegistry
	stats    *telemetry.Collector
}

// NewScheduler creates a new task scheduler.
func NewScheduler(cfg *config.Config, store *db.MessageStore, registry *network.ConnectionRegistry, stats *telemetry.Collector) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		store:    store,
		registry: registry,
		stats:    stats,
	}
}

// Start begins running all scheduled tasks. Blocks until the context is
// cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	log.Info().Msg("scheduler started")

	go s.runPruneLoop(ctx)
	go s.runStaleCheckLoop(ctx)
	go s.runHeartbeatLoop(ctx)

	<-ctx.Done()
	log.Info().Msg("scheduler stopped")
}

// runPruneLoop trims the message log down to the retention limit.
func (s *Scheduler) runPruneLoop(ctx context.Context) {
	storeCfg := s.cfg.GetStore()
	interval := time.Duration(storeCfg.PruneIntervalSec) * time.Second
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.store.Prune(storeCfg.RetentionRows)
			if err != nil {
				log.Warn().Err(err).Msg("message log prune failed")
				continue
			}
			if deleted > 0 {
				log.Info().
					Int64("deleted", deleted).
					Int("retention_rows", storeCfg.RetentionRows).
					Msg("message log pruned")
			}
		}
	}
}

// runStaleCheckLoop drops relay clients idle past twice the read timeout.
func (s *Scheduler) runStaleCheckLoop(ctx context.Context) {
	relayCfg := s.cfg.GetRelay()
	staleAfter := 2 * time.Duration(relayCfg.ReadTimeoutSec) * time.Second

	ticker := time.NewTicker(staleCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if cleaned := s.registry.CleanStale(staleAfter); cleaned > 0 {
				log.Info().Int("cleaned", cleaned).Msg("stale relay connections closed")
			}
		}
	}
}

// runHeartbeatLoop logs a periodic summary of decode activity.
func (s *Scheduler) runHeartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := s.stats.Snapshot()
			log.Info().
				Int64("decoded", snap.Decoded).
				Int64("failed", snap.Failed).
				Int("clients", snap.ActiveClients).
				Msg("decode activity")
		}
	}
}
