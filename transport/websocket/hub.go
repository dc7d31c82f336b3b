package websocket

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pixelgrove/relay-server/game/protocol"
	"github.com/pixelgrove/relay-server/game/session"
)

const defaultPingInterval = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// frame pairs an inbound payload with its originating connection.
type frame struct {
	client *Client
	data   []byte
}

// Hub maintains the set of open connections and relays validated messages
// between them. All state below is owned by the Run loop.
type Hub struct {
	registry *session.Registry

	// Open connections, joined or not. The liveness sweep covers all of
	// them; the registry covers only joined ones.
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	inbound    chan frame
	pong       chan *Client

	pingInterval time.Duration

	done      chan struct{}
	closeOnce sync.Once
}

// NewHub creates a hub relaying through the given registry. A non-positive
// pingInterval falls back to the 30 second default.
func NewHub(registry *session.Registry, pingInterval time.Duration) *Hub {
	if pingInterval <= 0 {
		pingInterval = defaultPingInterval
	}
	return &Hub{
		registry:     registry,
		clients:      make(map[*Client]bool),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		inbound:      make(chan frame),
		pong:         make(chan *Client),
		pingInterval: pingInterval,
		done:         make(chan struct{}),
	}
}

// Run drives the hub's event loop until Close is called. One event is
// handled to completion before the next is taken, so handlers never race
// with each other.
func (h *Hub) Run() {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case c := <-h.register:
			h.addClient(c)

		case c := <-h.unregister:
			h.dropClient(c)

		case f := <-h.inbound:
			h.route(f.client, f.data)

		case c := <-h.pong:
			h.handlePong(c)

		case <-ticker.C:
			h.sweep()

		case <-h.done:
			h.shutdown()
			return
		}
	}
}

// Close stops the event loop and tears down every open connection.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

// ServeWS upgrades an HTTP request and hands the connection to the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		ping: make(chan struct{}, 1),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// addClient starts tracking a new connection in the unjoined state.
func (h *Hub) addClient(c *Client) {
	h.clients[c] = true
	c.alive = true

	log.Printf("New player connected (open connections: %d)", len(h.clients))
}

// dropClient tears down a connection and, if it had joined, removes its
// session and announces the departure. Safe to call more than once per
// connection; only the first call has any effect.
func (h *Hub) dropClient(c *Client) {
	if !h.clients[c] {
		return
	}
	delete(h.clients, c)
	close(c.send)

	if c.sessionID == "" {
		log.Printf("Unjoined connection closed (open connections: %d)", len(h.clients))
		return
	}

	sess, ok := h.registry.Remove(c.sessionID)
	if !ok {
		return
	}

	h.registry.Broadcast(protocol.NewPlayerLeft(sess.Name, h.registry.Count()), "")
	log.Printf("Player %q disconnected (players: %d)", sess.Name, h.registry.Count())
}

// handlePong marks a connection as responsive. A pong from a connection
// that was already dropped is ignored.
func (h *Hub) handlePong(c *Client) {
	if h.clients[c] {
		c.alive = true
	}
}

// sweep enforces liveness. A connection whose alive flag was never set
// since the previous sweep is forcibly closed; its read pump then unblocks
// and the normal disconnect path runs. Everyone else has the flag cleared
// and gets a fresh ping.
func (h *Hub) sweep() {
	for c := range h.clients {
		if !c.alive {
			log.Println("Terminating unresponsive connection")
			c.conn.Close()
			continue
		}
		c.alive = false
		c.requestPing()
	}
}

// shutdown closes every connection on hub teardown.
func (h *Hub) shutdown() {
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
		c.conn.Close()
	}
}

// route decodes and dispatches one inbound frame. Frames from connections
// that were dropped while the frame sat in the queue are discarded.
func (h *Hub) route(c *Client, data []byte) {
	if !h.clients[c] {
		return
	}

	msg, err := protocol.Decode(data)
	if err != nil {
		h.reply(c, protocol.NewError(protocol.CodeBadRequest, "invalid message format"))
		return
	}

	switch msg.Type {
	case protocol.TypeJoin:
		h.handleJoin(c, msg)

	case protocol.TypeMove:
		if !h.requireJoined(c) {
			return
		}
		h.handleMove(c, msg)

	case protocol.TypeCombat:
		if !h.requireJoined(c) {
			return
		}
		h.handleCombat(c, msg)

	case protocol.TypeChat:
		if !h.requireJoined(c) {
			return
		}
		h.handleChat(c, msg)

	default:
		h.reply(c, protocol.NewError(protocol.CodeUnsupported,
			fmt.Sprintf("unsupported message type %q", msg.Type)))
	}
}

// requireJoined rejects actions from unjoined connections.
func (h *Hub) requireJoined(c *Client) bool {
	if c.sessionID == "" {
		h.reply(c, protocol.NewError(protocol.CodeNotJoined, "join before sending messages"))
		return false
	}
	return true
}

// handleJoin moves a connection from unjoined to joined: creates a session
// with a fresh id and sanitized name, replies with the assigned id and the
// player count, and announces the newcomer to everyone else. A second join
// on the same connection is rejected and changes nothing.
func (h *Hub) handleJoin(c *Client, msg *protocol.Inbound) {
	if c.sessionID != "" {
		h.reply(c, protocol.NewError(protocol.CodeConflict, "already joined"))
		return
	}

	sess := session.New(protocol.SanitizeName(msg.Player), c)
	h.registry.Add(sess)
	c.sessionID = sess.ID

	count := h.registry.Count()
	h.reply(c, protocol.NewJoined(sess.ID, count))
	h.registry.Broadcast(protocol.NewPlayerJoined(sess.Name, count), sess.ID)

	log.Printf("Player %q joined (players: %d)", sess.Name, count)
}

// handleMove relays a position update to everyone but the mover. The relay
// does no bounds checking; clients own movement rules.
func (h *Hub) handleMove(c *Client, msg *protocol.Inbound) {
	if !protocol.ValidCoords(msg.X, msg.Y) {
		h.reply(c, protocol.NewError(protocol.CodeBadRequest, "move requires numeric x and y"))
		return
	}

	h.registry.Broadcast(protocol.NewPlayerMove(c.sessionID, *msg.X, *msg.Y), c.sessionID)
}

// handleCombat relays a combat event to everyone but the originator.
func (h *Hub) handleCombat(c *Client, msg *protocol.Inbound) {
	event := protocol.SanitizeText(msg.Event)
	if event == "" {
		h.reply(c, protocol.NewError(protocol.CodeBadRequest, "combat requires an event"))
		return
	}

	h.registry.Broadcast(protocol.NewCombatEvent(c.sessionID, event), c.sessionID)
}

// handleChat relays a chat line to everyone, sender included. An empty
// message after sanitization is dropped without an error.
func (h *Hub) handleChat(c *Client, msg *protocol.Inbound) {
	text := protocol.SanitizeText(msg.Message)
	if text == "" {
		return
	}

	name := protocol.DefaultName
	if sess, ok := h.registry.Get(c.sessionID); ok {
		name = sess.Name
	}

	h.registry.Broadcast(protocol.NewChat(name, text), "")
}

// reply sends a message to a single connection.
func (h *Hub) reply(c *Client, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to marshal reply: %v", err)
		return
	}
	c.Send(data)
}
