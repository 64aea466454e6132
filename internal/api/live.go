package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/socwire-project/socwire/internal/events"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second

	// clientBuffer is each subscriber's queue; a client that can't keep
	// up gets dropped rather than blocking the feed.
	clientBuffer = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// LiveHub fans decoded messages out to websocket subscribers.
type LiveHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan events.MessageDecodedPayload
	feed    chan events.MessageDecodedPayload
}

// NewLiveHub creates a hub and subscribes it to the bus.
func NewLiveHub(eventBus *events.EventBus) *LiveHub {
	h := &LiveHub{
		clients: make(map[*websocket.Conn]chan events.MessageDecodedPayload),
		feed:    make(chan events.MessageDecodedPayload, 256),
	}

	eventBus.Subscribe(events.EventMessageDecoded, "live.decoded",
		func(ctx context.Context, event events.Event) error {
			payload, ok := event.Payload.(events.MessageDecodedPayload)
			if !ok {
				return nil
			}
			select {
			case h.feed <- payload:
			default:
				// feed full, drop rather than stall the bus
			}
			return nil
		})

	return h
}

// Run pumps the feed to all subscribers until the context ends.
func (h *LiveHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case payload := <-h.feed:
			h.mu.Lock()
			for conn, ch := range h.clients {
				select {
				case ch <- payload:
				default:
					log.Debug().Msg("live tail client too slow, dropping")
					close(ch)
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// HandleWS upgrades the request and streams decoded messages as JSON.
func (h *LiveHub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	ch := make(chan events.MessageDecodedPayload, clientBuffer)
	h.mu.Lock()
	h.clients[conn] = ch
	h.mu.Unlock()

	log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("live tail client connected")

	// reader goroutine: discard client frames, notice disconnects
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove(conn)
				return
			}
		}
	}()

	pingTicker := time.NewTicker(wsPingInterval)
	defer pingTicker.Stop()
	defer h.remove(conn)

	for {
		select {
		case payload, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(payload); err != nil {
				return
			}
		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *LiveHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if ch, ok := h.clients[conn]; ok {
		close(ch)
		delete(h.clients, conn)
	}
	h.mu.Unlock()
	conn.Close()
}

func (h *LiveHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, ch := range h.clients {
		close(ch)
		delete(h.clients, conn)
		conn.Close()
	}
}
