package websocket

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 4096

	// Outbound frame buffer per connection.
	sendBufferSize = 256
)

// Client is the per-connection context. It owns the socket and carries the
// connection's place in the join state machine: sessionID is empty while
// unjoined and set exactly once by a successful join.
//
// sessionID and alive are owned by the hub's event loop and must not be
// touched from any other goroutine.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	send chan []byte
	ping chan struct{}

	sessionID string
	alive     bool
}

// Send queues a frame for delivery. It reports false when the client's
// buffer is full or being torn down, in which case the frame is dropped;
// sends are fire-and-forget and never retried.
func (c *Client) Send(data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// requestPing asks the write pump to emit a ping control frame. A ping
// already pending is good enough, so the request is never queued twice.
func (c *Client) requestPing() {
	select {
	case c.ping <- struct{}{}:
	default:
	}
}

// readPump pumps frames from the socket into the hub. It runs in its own
// goroutine and guarantees the hub learns about the connection's end,
// whatever the cause.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetPongHandler(func(string) error {
		select {
		case c.hub.pong <- c:
		case <-c.hub.done:
		}
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}

		select {
		case c.hub.inbound <- frame{client: c, data: data}:
		case <-c.hub.done:
			return
		}
	}
}

// writePump pumps queued frames and ping requests to the socket. It is the
// only goroutine that writes, so socket writes need no further coordination.
func (c *Client) writePump() {
	defer c.conn.Close()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-c.ping:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
