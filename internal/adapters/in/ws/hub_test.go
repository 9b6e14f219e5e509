package ws_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/internal/adapters/in/ws"
	"tableside/internal/core/application/events"
	"tableside/internal/core/application/usecases/queries"
)

func startHubServer(t *testing.T) (*ws.Hub, string) {
	t.Helper()

	hub := ws.NewHub()
	e := echo.New()
	e.GET("/ws", ws.Handler(hub))

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return hub, "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func waitForSubscribers(t *testing.T, hub *ws.Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d subscribers, have %d", want, hub.SubscriberCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHub_PublishReachesAllClients(t *testing.T) {
	hub, url := startHubServer(t)

	first := dial(t, url)
	second := dial(t, url)
	waitForSubscribers(t, hub, 2)

	orderID := uuid.New()
	hub.Publish(events.OrderPaid{Order: queries.OrderResponse{
		ID:          orderID,
		TableNumber: 5,
		Status:      "paid",
		Items:       []queries.ItemResponse{},
	}})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)

		var decoded struct {
			Type  string `json:"type"`
			Order struct {
				ID          uuid.UUID `json:"id"`
				TableNumber int       `json:"table_number"`
				Status      string    `json:"status"`
			} `json:"order"`
		}
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.Equal(t, "order.paid", decoded.Type)
		assert.Equal(t, orderID, decoded.Order.ID)
		assert.Equal(t, 5, decoded.Order.TableNumber)
		assert.Equal(t, "paid", decoded.Order.Status)
	}
}

func TestHub_DisconnectedClientIsRemoved(t *testing.T) {
	hub, url := startHubServer(t)

	conn := dial(t, url)
	waitForSubscribers(t, hub, 1)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	require.NoError(t, conn.Close())

	waitForSubscribers(t, hub, 0)
}

func TestHub_PublishWithNoClientsDoesNotBlock(t *testing.T) {
	hub := ws.NewHub()

	done := make(chan struct{})
	go func() {
		hub.Publish(events.OrderDeleted{OrderID: uuid.New()})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked with no subscribers")
	}
}

func TestHub_SlowClientDoesNotBlockPublish(t *testing.T) {
	hub, url := startHubServer(t)

	// This client never reads; its buffer eventually fills.
	dial(t, url)
	waitForSubscribers(t, hub, 1)

	done := make(chan struct{})
	go func() {
		for range 200 {
			hub.Publish(events.OrderDeleted{OrderID: uuid.New()})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("publish blocked on a slow client")
	}
}
