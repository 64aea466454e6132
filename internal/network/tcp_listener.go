package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/socwire-project/socwire/internal/config"
	"github.com/socwire-project/socwire/internal/events"
	"github.com/socwire-project/socwire/internal/message"
)

// TCPListener accepts relay clients that stream raw wire messages, one
// per line. Every line goes through message.Decode; successes and
// failures are published on the event bus for the store, the live feed,
// and telemetry.
type TCPListener struct {
	cfg      *config.Config
	eventBus *events.EventBus
	registry *ConnectionRegistry
	listener net.Listener
}

// NewTCPListener creates a new relay listener.
func NewTCPListener(cfg *config.Config, eventBus *events.EventBus) *TCPListener {
	return &TCPListener{
		cfg:      cfg,
		eventBus: eventBus,
		registry: NewConnectionRegistry(),
	}
}

// Registry returns the listener's connection registry.
func (l *TCPListener) Registry() *ConnectionRegistry {
	return l.registry
}

// Start begins accepting relay connections. Blocks until the context is
// cancelled.
func (l *TCPListener) Start(ctx context.Context) error {
	relay := l.cfg.GetRelay()
	addr := fmt.Sprintf("%s:%d", relay.BindAddress, relay.Port)

	// SO_REUSEADDR allows immediate rebinding after restart
	lc := ReuseAddrListenConfig()
	var err error
	l.listener, err = lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to start relay listener on %s: %w", addr, err)
	}

	log.Info().Str("addr", addr).Msg("relay listener started")

	go func() {
		<-ctx.Done()
		l.listener.Close()
		l.registry.CloseAll()
	}()

	for {
		conn, err := l.listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				log.Info().Msg("relay listener stopping")
				return nil
			default:
				log.Error().Err(err).Msg("failed to accept connection")
				continue
			}
		}

		log.Debug().
			Str("remote", conn.RemoteAddr().String()).
			Msg("new relay client")

		go l.handleConnection(ctx, conn)
	}
}

// handleConnection scans one client's lines and dispatches each through
// the decoder.
func (l *TCPListener) handleConnection(ctx context.Context, rawConn net.Conn) {
	relay := l.cfg.GetRelay()
	readTimeout := time.Duration(relay.ReadTimeoutSec) * time.Second
	remote := rawConn.RemoteAddr().String()

	conn := NewConnection(rawConn, relay.MaxLineBytes)
	defer conn.Close()

	logger := log.With().
		Str("component", "relay_handler").
		Str("remote", remote).
		Logger()

	l.registry.Register(remote, conn)
	defer l.registry.Unregister(remote)

	l.eventBus.Emit(ctx, events.Event{
		Type:    events.EventClientConnected,
		Source:  "relay",
		Payload: events.ClientConnectionPayload{Remote: remote, Connected: true},
	})
	defer l.eventBus.Emit(ctx, events.Event{
		Type:    events.EventClientDisconnected,
		Source:  "relay",
		Payload: events.ClientConnectionPayload{Remote: remote, Connected: false},
	})

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("context cancelled, closing connection")
			return
		default:
		}

		line, err := conn.ReadLine(readTimeout)
		if err != nil {
			if conn.IsClosed() || errors.Is(err, io.EOF) {
				return
			}
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				logger.Warn().Msg("client idle past read timeout, closing")
				return
			}
			logger.Error().Err(err).Msg("read error, closing connection")
			return
		}

		if line == "" {
			continue
		}
		l.dispatch(ctx, remote, line)
	}
}

// dispatch decodes one line and publishes the result.
func (l *TCPListener) dispatch(ctx context.Context, remote, line string) {
	m := message.Decode(line)
	if m == nil {
		l.eventBus.Emit(ctx, events.Event{
			Type:    events.EventDecodeFailed,
			Source:  "relay",
			Payload: events.DecodeFailedPayload{Remote: remote, Line: line},
		})
		return
	}

	payload := events.MessageDecodedPayload{
		Remote:    remote,
		Direction: "in",
		TypeID:    m.Type(),
		Kind:      message.KindName(m.Type()),
		Line:      line,
		Rendering: m.String(),
	}
	if gm, ok := m.(message.ForGame); ok {
		payload.Game = gm.GameName()
	}

	l.eventBus.Emit(ctx, events.Event{
		Type:    events.EventMessageDecoded,
		Source:  "relay",
		Payload: payload,
	})
}

// Stop gracefully stops the relay listener.
func (l *TCPListener) Stop() error {
	if l.listener != nil {
		return l.listener.Close()
	}
	return nil
}
