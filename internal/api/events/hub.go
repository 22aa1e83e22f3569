// Package events streams dataset lifecycle events to browsers over websocket
package events

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/wonny/govdash/internal/dataset"
	"github.com/wonny/govdash/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
	sendBuffer     = 16
)

// TypeDatasetLoaded is sent after every successful (re)load
const TypeDatasetLoaded = "dataset.loaded"

// Event is one message on the stream
type Event struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Version  int64     `json:"version"`
	Rows     int       `json:"rows"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
}

// DatasetLoaded describes snap as an event
func DatasetLoaded(snap dataset.Snapshot) Event {
	e := Event{
		ID:       uuid.NewString(),
		Type:     TypeDatasetLoaded,
		Version:  snap.Version,
		LoadedAt: snap.LoadedAt,
	}
	if snap.Table != nil {
		e.Rows = snap.Table.Len()
		e.Source = snap.Table.Source()
	}
	return e
}

// Hub fans events out to connected websocket clients.
// A client that cannot keep up is dropped rather than blocking Publish.
// ⭐ SSOT: 웹소켓 연결 관리는 Hub에서만
type Hub struct {
	upgrader websocket.Upgrader
	logger   *logger.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte // replayed to new clients
	closed  bool
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub; origin checks are left to the reverse proxy
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger:  log.Component("events"),
		clients: make(map[*client]struct{}),
	}
}

// Publish sends e to every client
func (h *Hub) Publish(e Event) {
	msg, err := json.Marshal(e)
	if err != nil {
		h.logger.WithError(err).Error("Failed to encode event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = msg
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.WithField("client_id", c.id).Warn("Client too slow, dropping")
			h.dropLocked(c)
		}
	}
}

// Clients is the number of connected clients
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Run blocks until ctx is done, then disconnects every client
func (h *Hub) Run(ctx context.Context) error {
	<-ctx.Done()

	h.mu.Lock()
	h.closed = true
	for c := range h.clients {
		h.dropLocked(c)
	}
	h.mu.Unlock()

	h.logger.Info("Event hub stopped")
	return nil
}

// ServeHTTP upgrades the request and streams events until the client leaves
// GET /ws
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	if !h.add(c) {
		_ = conn.Close()
		return
	}

	log := h.logger.WithField("client_id", c.id)
	log.Debug("WebSocket client connected")

	go h.writePump(c)
	h.readPump(c)

	log.Debug("WebSocket client disconnected")
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	if h.last != nil {
		c.send <- h.last
	}
	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c)
}

// dropLocked closes c's send channel once; h.mu must be held
func (h *Hub) dropLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// readPump discards client messages and keeps the read deadline alive
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.WithError(err).Warn("Unexpected WebSocket close")
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
