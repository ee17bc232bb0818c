package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"gamezone/pkg/logger"
)

// Event is a session notification pushed to connected clients: cart
// changes, auth transitions, checkout outcomes.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Client is one WebSocket connection bound to a user session.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Manager tracks the active connection per user and fans session events
// out to them.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Debug("Session stream connected: %s", client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.UserID]; ok {
					delete(m.clients, client.UserID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Debug("Session stream disconnected: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Notify pushes an event to the user's connection if one is open. A
// user without a connected stream just misses the push; the session
// endpoints remain the source of truth.
func (m *Manager) Notify(userID string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to encode session event: %v", err)
		return
	}

	m.mutex.RLock()
	client, ok := m.clients[userID]
	m.mutex.RUnlock()

	if !ok {
		return
	}

	select {
	case client.Send <- data:
	default:
		// Slow consumer, drop the event rather than block the caller.
	}
}

// ReadPump drains inbound frames until the peer closes. The stream is
// push-only; anything the client sends is ignored.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Session stream read error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued events to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("Session stream write error: %v", err)
			return
		}
	}
}
