package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"room-booking/internal/usecase/shared"

	"github.com/gorilla/websocket"
)

const clientBuffer = 16

// Hub fans committed booking changes out to every connected websocket.
// A client that cannot keep up is dropped instead of slowing the writer.
type Hub struct {
	clients map[*Client]struct{}
	mu      sync.RWMutex
	closed  bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Attach registers conn and starts its pumps. It returns immediately.
func (h *Hub) Attach(conn *websocket.Conn) {
	c := newClient(h, conn, clientBuffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		c.close()
		return
	}
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	slog.Debug("ws client attached", slog.String("clientId", c.id), slog.Int("clients", n))
	go c.writePump()
	go c.readPump()
}

func (h *Hub) detach(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detachLocked(c)
}

func (h *Hub) detachLocked(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	c.close()
	slog.Debug("ws client detached", slog.String("clientId", c.id))
}

// Notify implements shared.ChangeNotifier.
func (h *Hub) Notify(change shared.Change) {
	data, err := json.Marshal(change)
	if err != nil {
		slog.Error("change marshal error", slog.Any("error", err))
		return
	}

	// sends never block, so holding the read lock keeps close(send) out of the way
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			go h.detach(c)
		}
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client; later Attach calls are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		h.detachLocked(c)
	}
}
