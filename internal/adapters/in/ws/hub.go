// Package ws implements the notification hub: every connected client
// receives a JSON copy of each broadcast event. Delivery is best effort and
// at most once per client; the hub never blocks a mutation on a slow reader.
package ws

import (
	"log/slog"
	"sync"

	"tableside/internal/core/application/events"
)

// sendBufferSize bounds the per-client outbound queue. A client that falls
// further behind than this starts losing events and is disconnected.
const sendBufferSize = 64

// Hub fans broadcast events out to connected clients. It implements
// events.Publisher: command results reach the hub after the surrounding
// transaction commits, so clients never see uncommitted state.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

// Publish sends the event to every connected client. The send to each client
// is non-blocking: when a client's buffer is full, the event is dropped for
// that client and the client is closed so it can reconnect and re-sync from
// a fresh snapshot.
func (h *Hub) Publish(event events.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- event:
		default:
			slog.Warn("dropping slow websocket client",
				"event", event.Kind(),
				"remote", client.RemoteAddr(),
			)
			client.closeAsync()
		}
	}
}

// SubscriberCount returns how many clients are currently connected.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}
