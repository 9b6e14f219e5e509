package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/internal/core/application/events"
	"tableside/internal/core/application/usecases/queries"
)

func sampleOrder() queries.OrderResponse {
	return queries.OrderResponse{
		ID:          uuid.New(),
		TableNumber: 7,
		WaiterID:    uuid.New(),
		WaiterName:  "Priya",
		Status:      "active",
		TotalAmount: 760,
		CreatedAt:   time.Now().UTC(),
		Items: []queries.ItemResponse{
			{
				ID:       uuid.New(),
				Name:     "Butter Chicken",
				Quantity: 2,
				Price:    380,
				Status:   "active",
				AddedAt:  time.Now().UTC(),
			},
		},
	}
}

func TestEventKinds(t *testing.T) {
	order := sampleOrder()

	testCases := []struct {
		event    events.Event
		expected string
	}{
		{events.OrderCreated{Order: order}, "order.created"},
		{events.OrderUpdated{Order: order}, "order.updated"},
		{events.OrderReady{Order: order}, "order.ready"},
		{events.OrderPaid{Order: order}, "order.paid"},
		{events.OrderCancelled{Order: order}, "order.cancelled"},
		{events.ItemCancelled{Order: order}, "item.cancelled"},
		{events.OrderDeleted{OrderID: order.ID}, "order.deleted"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.event.Kind())
	}
}

func TestOrderEventEnvelope(t *testing.T) {
	order := sampleOrder()

	data, err := json.Marshal(events.OrderCreated{Order: order})
	require.NoError(t, err)

	var decoded struct {
		Type  string                `json:"type"`
		Order queries.OrderResponse `json:"order"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "order.created", decoded.Type)
	assert.Equal(t, order.ID, decoded.Order.ID)
	assert.Equal(t, order.TableNumber, decoded.Order.TableNumber)
	assert.Len(t, decoded.Order.Items, 1)
	assert.Equal(t, "Butter Chicken", decoded.Order.Items[0].Name)
}

func TestOrderDeletedEnvelope(t *testing.T) {
	orderID := uuid.New()

	data, err := json.Marshal(events.OrderDeleted{OrderID: orderID})
	require.NoError(t, err)

	var decoded struct {
		Type    string    `json:"type"`
		OrderID uuid.UUID `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "order.deleted", decoded.Type)
	assert.Equal(t, orderID, decoded.OrderID)
}

func TestNopPublisher(t *testing.T) {
	var p events.NopPublisher
	p.Publish(events.OrderDeleted{OrderID: uuid.New()})
}
