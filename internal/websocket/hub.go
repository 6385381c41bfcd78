package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"chatapp/internal/metrics"

	"go.uber.org/zap"
)

// broadcastMessage is a frame for every session except the one named in except.
type broadcastMessage struct {
	except  string
	payload []byte
}

// Hub owns the registry of live sessions. Only the Run goroutine mutates it.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan *broadcastMessage
	done       chan struct{}

	logger *Logger
	events *metrics.Requests
}

// NewHub creates a new Hub. events may be nil.
func NewHub(l *Logger, events *metrics.Requests) *Hub {
	if l == nil {
		l = NewLogger(nil)
	}
	return &Hub{
		sessions:   make(map[string]*Client),
		register:   make(chan *Client, 256),
		unregister: make(chan *Client, 256),
		broadcast:  make(chan *broadcastMessage, 256),
		done:       make(chan struct{}),
		logger:     l,
		events:     events,
	}
}

// Run processes registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case msg := <-h.broadcast:
			h.deliver(msg.except, msg.payload)

		case <-ctx.Done():
			h.shutdown()
			return
		}
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// BroadcastOthers sends payload to every connected session except sender.
func (h *Hub) BroadcastOthers(sender string, payload []byte) {
	h.enqueue(&broadcastMessage{except: sender, payload: payload})
}

// RelayMessage rebroadcasts a new_message payload verbatim to everyone but the sender.
func (h *Hub) RelayMessage(sender string, data json.RawMessage) {
	h.countEvent()
	payload, err := encodeRaw(EventNewMessage, data)
	if err != nil {
		h.logger.Error("encode new_message failed", sender, err)
		return
	}
	h.BroadcastOthers(sender, payload)
}

func (h *Hub) enqueue(msg *broadcastMessage) {
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// SessionCount returns the number of connected sessions
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func (h *Hub) handleRegister(client *Client) {
	if !client.state.CompareAndSwap(int32(StateConnecting), int32(StateConnected)) {
		// disconnected before the hub saw it
		client.closeSend()
		return
	}

	h.mu.Lock()
	h.sessions[client.sessionID] = client
	h.mu.Unlock()

	h.countEvent()
	h.logger.Info("client connected", client.sessionID)

	payload, err := encodeEvent(EventConnect, client.sessionID)
	if err != nil {
		h.logger.Error("encode connect failed", client.sessionID, err)
		return
	}
	h.deliver("", payload)
}

func (h *Hub) handleUnregister(client *Client) {
	prev := State(client.state.Swap(int32(StateDisconnected)))
	if prev != StateConnected {
		return
	}

	h.mu.Lock()
	delete(h.sessions, client.sessionID)
	h.mu.Unlock()
	client.closeSend()

	h.countEvent()
	h.logger.Info("client disconnected", client.sessionID,
		zap.Duration("session_duration", time.Since(client.connectedAt)))

	payload, err := encodeEvent(EventDisconnect, disconnectText(client.sessionID))
	if err != nil {
		h.logger.Error("encode disconnect failed", client.sessionID, err)
		return
	}
	h.deliver("", payload)
}

// deliver enqueues payload on every session's outbound queue without blocking.
// A full queue drops the frame for that session.
func (h *Hub) deliver(except string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, client := range h.sessions {
		if id == except {
			continue
		}
		if !client.enqueue(payload) {
			h.logger.Warn("client send buffer full", id, zap.Int("payload_bytes", len(payload)))
		}
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, client := range h.sessions {
		client.state.Store(int32(StateDisconnected))
		client.closeSend()
		delete(h.sessions, id)
	}
}

func (h *Hub) countEvent() {
	if h.events != nil {
		h.events.Inc()
	}
}
