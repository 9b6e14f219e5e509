package ws

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"tableside/internal/core/application/events"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Clients are trusted devices on the restaurant's network.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Client is one connected websocket peer. Events queue on the send channel
// and a single writer goroutine drains it, so concurrent Publish calls never
// interleave frames.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan events.Event

	closeOnce sync.Once
}

// RemoteAddr returns the peer address for logging.
func (c *Client) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

func (c *Client) closeAsync() {
	c.closeOnce.Do(func() {
		go func() {
			c.hub.unregister(c)
			_ = c.conn.Close()
		}()
	})
}

// writePump drains the send channel onto the wire and keeps the connection
// alive with pings. One writePump per client; it exits when the client is
// unregistered or the connection breaks.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.closeAsync()
	}()

	for {
		select {
		case event, ok := <-c.send:
			if !ok {
				return
			}

			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames. Clients only listen on this socket, but
// reading is required to process control frames and notice disconnects.
func (c *Client) readPump() {
	defer c.closeAsync()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Handler upgrades an HTTP request to a websocket connection and attaches
// the peer to the hub until it disconnects.
func Handler(hub *Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}

		client := &Client{
			hub:  hub,
			conn: conn,
			send: make(chan events.Event, sendBufferSize),
		}
		hub.register(client)

		slog.Info("websocket client connected", "remote", client.RemoteAddr())

		go client.writePump()
		go client.readPump()

		return nil
	}
}
