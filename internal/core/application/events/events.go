// Package events defines the broadcast messages pushed to connected clients
// after each successful mutation. Every event carries either a full order
// snapshot or, for deletions, just the order id, so clients can update their
// view without re-fetching.
package events

import (
	"encoding/json"

	"github.com/google/uuid"

	"tableside/internal/core/application/usecases/queries"
)

// Event is a broadcast message. The set of implementations is closed: one
// type per mutation the engine performs.
type Event interface {
	// Kind returns the wire name of the event, e.g. "order.created".
	Kind() string
}

// Publisher delivers events to all connected clients. Delivery is best
// effort and at most once per client; Publish never blocks on slow
// consumers and never returns an error to the mutation path.
type Publisher interface {
	Publish(event Event)
}

// NopPublisher discards every event. Used in tests and in tools that run
// mutations without a live client hub.
type NopPublisher struct{}

// Publish discards the event.
func (NopPublisher) Publish(Event) {}

type orderEnvelope struct {
	Type  string                `json:"type"`
	Order queries.OrderResponse `json:"order"`
}

type orderIDEnvelope struct {
	Type    string    `json:"type"`
	OrderID uuid.UUID `json:"orderId"`
}

// OrderCreated announces a newly opened tab.
type OrderCreated struct {
	Order queries.OrderResponse
}

// Kind returns "order.created".
func (OrderCreated) Kind() string { return "order.created" }

// MarshalJSON encodes the event as {"type": ..., "order": ...}.
func (e OrderCreated) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderEnvelope{Type: e.Kind(), Order: e.Order})
}

// OrderUpdated announces that item lines were appended to an open tab.
type OrderUpdated struct {
	Order queries.OrderResponse
}

// Kind returns "order.updated".
func (OrderUpdated) Kind() string { return "order.updated" }

// MarshalJSON encodes the event as {"type": ..., "order": ...}.
func (e OrderUpdated) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderEnvelope{Type: e.Kind(), Order: e.Order})
}

// OrderReady announces that the kitchen finished an order.
type OrderReady struct {
	Order queries.OrderResponse
}

// Kind returns "order.ready".
func (OrderReady) Kind() string { return "order.ready" }

// MarshalJSON encodes the event as {"type": ..., "order": ...}.
func (e OrderReady) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderEnvelope{Type: e.Kind(), Order: e.Order})
}

// OrderPaid announces that a tab was settled.
type OrderPaid struct {
	Order queries.OrderResponse
}

// Kind returns "order.paid".
func (OrderPaid) Kind() string { return "order.paid" }

// MarshalJSON encodes the event as {"type": ..., "order": ...}.
func (e OrderPaid) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderEnvelope{Type: e.Kind(), Order: e.Order})
}

// OrderCancelled announces that a whole tab was cancelled.
type OrderCancelled struct {
	Order queries.OrderResponse
}

// Kind returns "order.cancelled".
func (OrderCancelled) Kind() string { return "order.cancelled" }

// MarshalJSON encodes the event as {"type": ..., "order": ...}.
func (e OrderCancelled) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderEnvelope{Type: e.Kind(), Order: e.Order})
}

// ItemCancelled announces that a single item line was struck from a tab.
// It carries the owning order's full snapshot with the new total.
type ItemCancelled struct {
	Order queries.OrderResponse
}

// Kind returns "item.cancelled".
func (ItemCancelled) Kind() string { return "item.cancelled" }

// MarshalJSON encodes the event as {"type": ..., "order": ...}.
func (e ItemCancelled) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderEnvelope{Type: e.Kind(), Order: e.Order})
}

// OrderDeleted announces that a manager purged an order. The order no longer
// exists, so only its id is carried.
type OrderDeleted struct {
	OrderID uuid.UUID
}

// Kind returns "order.deleted".
func (OrderDeleted) Kind() string { return "order.deleted" }

// MarshalJSON encodes the event as {"type": ..., "orderId": ...}.
func (e OrderDeleted) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderIDEnvelope{Type: e.Kind(), OrderID: e.OrderID})
}
