package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

func registeredCount(h *Hub, sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func TestHubDeliversScoreToRegisteredClients(t *testing.T) {
	hub := NewHub(testLogger{})
	go hub.Run()

	sessionID := uuid.New()
	client := &Client{Hub: hub, SessionID: sessionID, Send: make(chan []byte, 4)}
	hub.register <- client
	require.Eventually(t, func() bool {
		return registeredCount(hub, sessionID) == 1
	}, time.Second, 5*time.Millisecond)

	hub.SendScore(sessionID, map[string]int{"score": 72})

	select {
	case data := <-client.Send:
		var envelope struct {
			Type string         `json:"type"`
			Data map[string]int `json:"data"`
		}
		require.NoError(t, json.Unmarshal(data, &envelope))
		assert.Equal(t, "ats_score", envelope.Type)
		assert.Equal(t, 72, envelope.Data["score"])
	case <-time.After(time.Second):
		t.Fatal("no score delivered")
	}
}

func TestHubDropsStalledClientWithoutBlockingOthers(t *testing.T) {
	hub := NewHub(testLogger{})
	go hub.Run()

	sessionID := uuid.New()
	healthy := &Client{Hub: hub, SessionID: sessionID, Send: make(chan []byte, 4)}
	stalled := &Client{Hub: hub, SessionID: sessionID, Send: make(chan []byte, 1)}
	stalled.Send <- []byte("backlog")

	hub.register <- healthy
	hub.register <- stalled
	require.Eventually(t, func() bool {
		return registeredCount(hub, sessionID) == 2
	}, time.Second, 5*time.Millisecond)

	hub.SendScore(sessionID, map[string]int{"score": 10})

	select {
	case <-healthy.Send:
	case <-time.After(time.Second):
		t.Fatal("healthy client did not receive the score")
	}

	// The stalled client is unregistered and its channel closed.
	require.Eventually(t, func() bool {
		return registeredCount(hub, sessionID) == 1
	}, time.Second, 5*time.Millisecond)
	<-stalled.Send // drain the backlog entry
	_, open := <-stalled.Send
	assert.False(t, open)
}
