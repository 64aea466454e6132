// socwire - SOC wire protocol relay & inspector
//
// socwire accepts line-delimited SOC protocol traffic over TCP, decodes
// each line into a typed message, logs it to SQLite, and exposes the
// stream through a debug REST API, a websocket live tail, MQTT
// telemetry, and an interactive console.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/socwire-project/socwire/internal/api"
	"github.com/socwire-project/socwire/internal/cli"
	"github.com/socwire-project/socwire/internal/config"
	"github.com/socwire-project/socwire/internal/db"
	"github.com/socwire-project/socwire/internal/events"
	"github.com/socwire-project/socwire/internal/network"
	"github.com/socwire-project/socwire/internal/scheduler"
	"github.com/socwire-project/socwire/internal/telemetry"
	"github.com/socwire-project/socwire/internal/util"
)

const (
	AppName    = "socwire"
	AppVersion = "1.0.0"
	Banner     = `
                                _
  ___  ___   ___ __      __(_)_ __ ___
 / __|/ _ \ / __|\ \ /\ / /| | '__/ _ \
 \__ \ (_) | (__  \ V  V / | | | |  __/
 |___/\___/ \___|  \_/\_/  |_|_|  \___|  v%s
 SOC wire protocol relay & inspector
`
)

func main() {
	// Print banner
	fmt.Printf(Banner, AppVersion)
	fmt.Println()

	// Initialize logger with defaults first (will be reconfigured after config load)
	if err := util.InitLogger(util.DefaultLogConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.Info().
		Str("version", AppVersion).
		Str("platform", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Int("cpus", runtime.NumCPU()).
		Msg("starting socwire")

	// Load configuration
	cfg, err := config.Load(config.DefaultConfigDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Re-initialize logger with config-based settings
	logCfg := util.LogConfig{
		Level:      cfg.Logging.Level,
		Directory:  cfg.Logging.Directory,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Console:    true,
	}
	if err := util.InitLogger(logCfg); err != nil {
		log.Warn().Err(err).Msg("failed to reconfigure logger, using defaults")
	}

	// Validate configuration
	validation := config.Validate(cfg)
	for _, w := range validation.Warnings {
		log.Warn().Str("field", w.Field).Msg(w.Message)
	}
	if !validation.IsValid() {
		for _, e := range validation.Errors {
			log.Error().Str("field", e.Field).Msg(e.Message)
		}
		log.Fatal().Msg("configuration validation failed, please fix the errors above")
	}

	// Log system info
	sysInfo := util.GetSystemInfo()
	log.Info().
		Str("hostname", sysInfo.Hostname).
		Str("os", sysInfo.OS).
		Str("cpu", sysInfo.CPUModel).
		Int("cores", sysInfo.CPUCores).
		Uint64("memory_mb", sysInfo.TotalMemory).
		Msg("system information")

	// Create root context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize core components
	eventBus := events.NewEventBus()

	// Open the message log
	database, err := db.NewDatabase(cfg.GetStore().Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open message log database")
	}
	defer database.Close()

	store, err := db.NewMessageStore(database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize message log")
	}

	// Every decoded message is appended to the log
	eventBus.Subscribe(events.EventMessageDecoded, "store.append",
		func(ctx context.Context, event events.Event) error {
			payload, ok := event.Payload.(events.MessageDecodedPayload)
			if !ok {
				return nil
			}
			return store.Append(db.MessageRecord{
				ReceivedAt: time.Now(),
				Remote:     payload.Remote,
				Direction:  payload.Direction,
				TypeID:     payload.TypeID,
				Kind:       payload.Kind,
				Game:       payload.Game,
				Line:       payload.Line,
				Rendering:  payload.Rendering,
			})
		})

	// In-memory decode counters
	stats := telemetry.NewCollector(eventBus)

	// Relay listener
	tcpListener := network.NewTCPListener(cfg, eventBus)

	// Debug REST API
	var apiServer *api.Server
	if cfg.GetAPI().Enabled {
		apiServer = api.NewServer(cfg, eventBus, store, stats)
	}

	// MQTT telemetry
	var mqttHandler *telemetry.MQTTHandler
	if cfg.GetMQTT().Enabled {
		mqttHandler, err = telemetry.NewMQTTHandler(cfg, eventBus, stats)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize MQTT, telemetry disabled")
		}
	}

	// Background tasks: log pruning, stale connections, heartbeat
	sched := scheduler.NewScheduler(cfg, store, tcpListener.Registry(), stats)

	// Interactive CLI
	cliHandler := cli.NewCLI(cfg, eventBus, store, stats)

	// ---------------------------------------------------------------
	// Launch all concurrent tasks
	// ---------------------------------------------------------------
	var wg sync.WaitGroup
	errCh := make(chan error, 10)

	// Task 1: relay listener (with retry for port binding)
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info().Int("port", cfg.GetRelay().Port).Msg("starting relay listener")
		if err := startWithRetry(ctx, "relay listener", tcpListener.Start, 15); err != nil {
			log.Error().Err(err).Msg("relay listener failed after retries")
			errCh <- fmt.Errorf("relay listener: %w", err)
		}
	}()

	// Task 2: debug REST API (with retry for port binding)
	if apiServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Info().Int("port", cfg.GetAPI().Port).Msg("starting API server")
			if err := startWithRetry(ctx, "API server", apiServer.Start, 15); err != nil {
				log.Warn().Err(err).Msg("API server failed after retries (non-fatal)")
			}
		}()
	}

	// Task 3: MQTT telemetry
	if mqttHandler != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Info().Msg("starting MQTT telemetry")
			if err := mqttHandler.Start(ctx); err != nil {
				log.Warn().Err(err).Msg("MQTT telemetry failed")
			}
		}()
	}

	// Task 4: scheduler (log pruning, stale connections, heartbeat)
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info().Msg("starting task scheduler")
		sched.Start(ctx)
	}()

	// Task 5: interactive CLI
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info().Msg("starting interactive CLI")
		cliHandler.Start(ctx)
	}()

	// ---------------------------------------------------------------
	// Graceful shutdown handling
	// ---------------------------------------------------------------
	shutdownCh := make(chan struct{}, 1)
	eventBus.Subscribe(events.EventShutdown, "main.shutdown",
		func(ctx context.Context, event events.Event) error {
			select {
			case shutdownCh <- struct{}{}:
			default:
			}
			return nil
		})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	case <-shutdownCh:
		log.Info().Msg("shutdown requested")
	case err := <-errCh:
		log.Error().Err(err).Msg("critical error, initiating shutdown")
	}

	log.Info().Msg("initiating graceful shutdown...")

	// Cancel the root context to signal all goroutines
	cancel()

	// Wait for all goroutines with timeout
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("all tasks stopped gracefully")
	case <-time.After(30 * time.Second):
		log.Warn().Msg("shutdown timed out after 30 seconds, forcing exit")
	}

	// Stop the event bus last
	eventBus.Stop()

	log.Info().Msg("socwire stopped")
}

// startWithRetry attempts to start a listener/server with retry on bind
// errors. Uses a fixed 3-second interval between retries to give the OS
// time to release sockets. Returns nil on success, or the last error
// after all retries fail.
func startWithRetry(ctx context.Context, name string, startFn func(context.Context) error, maxRetries int) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		lastErr = startFn(ctx)
		if lastErr == nil {
			return nil
		}
		if i < maxRetries {
			log.Warn().Err(lastErr).Str("component", name).Int("retry", i+1).Int("max", maxRetries).Msg("bind failed, retrying in 3s...")
			time.Sleep(3 * time.Second)
		}
	}
	return lastErr
}
