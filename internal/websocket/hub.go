// Package websocket pushes live-reload notifications to open browser tabs.
package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/conneroisu/webref/internal/logging"
)

// Message types sent to the browser.
const (
	MessageCatalogReload = "catalog_reload"
	MessageFullReload    = "full_reload"
)

const (
	pingInterval = 30 * time.Second
	writeTimeout = 10 * time.Second
	sendBuffer   = 16
)

// UpdateMessage represents a message sent to the browser
type UpdateMessage struct {
	Type      string    `json:"type"`
	Target    string    `json:"target,omitempty"`
	Content   string    `json:"content,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// OriginValidator decides whether a browser origin may connect.
type OriginValidator interface {
	IsAllowedOrigin(origin string) bool
}

// Client is one connected browser tab.
type Client struct {
	ID          string
	conn        *websocket.Conn
	send        chan []byte
	connectedAt time.Time
}

// Hub tracks live-reload clients and fans out broadcasts.
type Hub struct {
	clients map[string]*Client
	mutex   sync.RWMutex

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	origins OriginValidator
	logger  logging.Logger
	onCount func(int)

	ctx          context.Context
	cancel       context.CancelFunc
	done         chan struct{}
	shutdownOnce sync.Once
	isShutdown   atomic.Bool
}

// Option customises a Hub.
type Option func(*Hub)

// WithClientCountHook is called from the hub goroutine whenever the number of
// connected clients changes.
func WithClientCountHook(fn func(int)) Option {
	return func(h *Hub) { h.onCount = fn }
}

// NewHub starts a hub. Call Shutdown to stop it.
func NewHub(origins OriginValidator, logger logging.Logger, opts ...Option) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	h := &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		origins:    origins,
		logger:     logger.WithComponent("websocket"),
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}

	go h.run()
	return h
}

// ServeHTTP upgrades the request and registers the connection.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShutdown.Load() {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	origin := r.Header.Get("Origin")
	if origin != "" && h.origins != nil && !h.origins.IsAllowedOrigin(origin) {
		h.logger.Warn(r.Context(), nil, "WebSocket connection rejected",
			"origin", logging.SanitizeForLog(origin),
			"remote", r.RemoteAddr)
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Origins are checked above.
		OriginPatterns:  []string{"*"},
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		h.logger.Warn(r.Context(), err, "WebSocket upgrade failed", "remote", r.RemoteAddr)
		return
	}

	client := &Client{
		ID:          uuid.NewString(),
		conn:        conn,
		send:        make(chan []byte, sendBuffer),
		connectedAt: time.Now(),
	}

	select {
	case h.register <- client:
	case <-h.ctx.Done():
		_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}

	go h.writePump(client)
	h.readPump(client)
}

func (h *Hub) run() {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client.ID] = client
			n := len(h.clients)
			h.mutex.Unlock()

			h.logger.Debug(h.ctx, "Client connected", "client_id", client.ID, "clients", n)
			h.countChanged(n)

		case client := <-h.unregister:
			h.mutex.Lock()
			_, ok := h.clients[client.ID]
			if ok {
				delete(h.clients, client.ID)
				close(client.send)
			}
			n := len(h.clients)
			h.mutex.Unlock()

			if ok {
				h.logger.Debug(h.ctx, "Client disconnected", "client_id", client.ID, "clients", n)
				h.countChanged(n)
			}

		case message := <-h.broadcast:
			h.mutex.RLock()
			for _, client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client; drop it rather than stall the hub.
					go h.drop(client)
				}
			}
			h.mutex.RUnlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *Hub) countChanged(n int) {
	if h.onCount != nil {
		h.onCount(n)
	}
}

func (h *Hub) drop(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

// readPump discards inbound frames; it exists to notice disconnects.
func (h *Hub) readPump(client *Client) {
	defer h.drop(client)

	for {
		if _, _, err := client.conn.Read(h.ctx); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(client *Client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	defer func() { _ = client.conn.Close(websocket.StatusNormalClosure, "") }()

	for {
		select {
		case message, ok := <-client.send:
			if !ok {
				return
			}
			ctx, cancel := context.WithTimeout(h.ctx, writeTimeout)
			err := client.conn.Write(ctx, websocket.MessageText, message)
			cancel()
			if err != nil {
				h.logger.Debug(h.ctx, "Write failed", "client_id", client.ID, "error", err.Error())
				return
			}

		case <-ticker.C:
			ctx, cancel := context.WithTimeout(h.ctx, writeTimeout)
			err := client.conn.Ping(ctx)
			cancel()
			if err != nil {
				return
			}

		case <-h.ctx.Done():
			return
		}
	}
}

// Broadcast queues msg for every connected client. It never blocks; when the
// queue is full the message is dropped and false is returned.
func (h *Hub) Broadcast(msg UpdateMessage) bool {
	if h.isShutdown.Load() {
		return false
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error(h.ctx, err, "Failed to marshal broadcast message")
		return false
	}

	select {
	case h.broadcast <- data:
		return true
	default:
		h.logger.Warn(h.ctx, nil, "Broadcast queue full, dropping message", "type", msg.Type)
		return false
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// Shutdown stops the hub and closes every connection.
func (h *Hub) Shutdown(ctx context.Context) error {
	var err error
	h.shutdownOnce.Do(func() {
		h.isShutdown.Store(true)
		h.cancel()

		select {
		case <-h.done:
		case <-ctx.Done():
			err = ctx.Err()
			return
		}

		h.mutex.Lock()
		for id, client := range h.clients {
			close(client.send)
			_ = client.conn.Close(websocket.StatusGoingAway, "server shutdown")
			delete(h.clients, id)
		}
		h.mutex.Unlock()

		h.logger.Info(ctx, "WebSocket hub shut down")
	})
	return err
}

// IsShutdown reports whether Shutdown has been called.
func (h *Hub) IsShutdown() bool {
	return h.isShutdown.Load()
}
