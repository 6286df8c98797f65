package websocket

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"ai-resume-be/internal/pkg/logger"
)

// Hub fans ATS score updates out to the websocket clients watching a session.
// A session can have several connections open (multiple tabs); all of them
// receive every update. Everything is in-process: one binary, no cross
// instance channel.
type Hub struct {
	// Registered clients map: SessionID -> list of clients
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Session has no more clients", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// SendScore pushes a score payload to every connection watching the session.
// Slow consumers are dropped rather than allowed to back up the hub.
func (h *Hub) SendScore(sessionID uuid.UUID, payload interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type": "ats_score",
		"data": payload,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal score payload", map[string]interface{}{"error": err.Error()})
		return
	}

	// Iterate under the read lock so Run cannot splice the slice mid-loop.
	// Dropped clients are handed to unregister only after the lock is
	// released; Run needs the write lock to process them.
	var dropped []*Client
	h.mu.RLock()
	for _, client := range h.clients[sessionID] {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"session_id": sessionID})
			dropped = append(dropped, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range dropped {
		h.unregister <- client
	}
}
