// Package ws pushes demo notifications to browsers over WebSocket.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
	"github.com/99minutos/tracking-demo/internal/metrics"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 32
)

// Message is the envelope of every frame sent to clients.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type client struct {
	sessionID string
	conn      *websocket.Conn
	send      chan []byte
	once      sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub tracks connected clients per session and implements queue.Sink.
type Hub struct {
	service  ports.DemoService
	upgrader websocket.Upgrader
	log      zerolog.Logger

	mu      sync.Mutex
	clients map[string]map[*client]struct{}
}

// NewHub creates a hub. allowedOrigins lists the browser origins permitted to
// connect; requests without an Origin header are always accepted.
func NewHub(service ports.DemoService, allowedOrigins []string, log zerolog.Logger) *Hub {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	h := &Hub{
		service: service,
		log:     log,
		clients: make(map[string]map[*client]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || allowed["*"] || allowed[origin] {
				return true
			}
			h.log.Warn().Str("origin", origin).Msg("websocket origin rejected")
			return false
		},
	}
	return h
}

// Serve handles GET /ws?session=<id>. The first frame is the session snapshot.
func (h *Hub) Serve(c echo.Context) error {
	sessionID := c.QueryParam("session")
	if sessionID == "" {
		return &domain.ValidationError{Field: "session", Reason: "is required"}
	}
	snap, err := h.service.Get(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Debug().Err(err).Msg("websocket upgrade failed")
		return nil
	}

	cl := &client{sessionID: sessionID, conn: conn, send: make(chan []byte, sendBuffer)}
	if data, err := encode(Message{Type: "snapshot", Payload: snap}); err == nil {
		cl.send <- data
	}
	h.register(cl)

	go h.writePump(cl)
	go h.readPump(cl)
	return nil
}

// Deliver sends n to every client following its session. Slow clients whose
// buffer is full are disconnected.
func (h *Hub) Deliver(_ context.Context, n domain.Notification) error {
	data, err := encode(Message{Type: "notification", Payload: n})
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients[n.SessionID] {
		select {
		case cl.send <- data:
		default:
			h.log.Warn().Str("session_id", n.SessionID).Msg("websocket client too slow, disconnecting")
			h.removeLocked(cl)
		}
	}
	return nil
}

// Clients returns the number of clients following sessionID.
func (h *Hub) Clients(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[sessionID])
}

// Disconnect sends a final "closed" frame to the clients of sessionID and
// drops them. Called when the session is torn down.
func (h *Hub) Disconnect(sessionID string) {
	data, err := encode(Message{Type: "closed", Payload: map[string]string{"session_id": sessionID}})
	if err != nil {
		h.log.Error().Err(err).Msg("encode closed frame")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients[sessionID] {
		if data != nil {
			select {
			case cl.send <- data:
			default:
			}
		}
		h.removeLocked(cl)
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, set := range h.clients {
		for cl := range set {
			h.removeLocked(cl)
		}
	}
}

func (h *Hub) register(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[cl.sessionID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[cl.sessionID] = set
	}
	set[cl] = struct{}{}
	metrics.WebSocketClients.Inc()
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(cl)
}

func (h *Hub) removeLocked(cl *client) {
	set := h.clients[cl.sessionID]
	if _, ok := set[cl]; !ok {
		return
	}
	delete(set, cl)
	if len(set) == 0 {
		delete(h.clients, cl.sessionID)
	}
	cl.close()
	metrics.WebSocketClients.Dec()
}

func (h *Hub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case data, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.unregister(cl)
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.unregister(cl)
				return
			}
		}
	}
}

// readPump discards client frames and unregisters on disconnect.
func (h *Hub) readPump(cl *client) {
	defer h.unregister(cl)

	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func encode(m Message) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s message: %w", m.Type, err)
	}
	return data, nil
}
