// Package websocket provides the WebSocket transport for the relay server.
//
// The package uses a hub-and-spoke model: a central Hub owns all connection
// state and processes every event (connect, inbound frame, pong, disconnect,
// liveness tick) serially on a single goroutine. Registry mutations and
// broadcasts are therefore atomic with respect to each other without any
// locking inside the hub itself.
//
// Connection Lifecycle:
//
//  1. Client connects and is registered with the hub.
//  2. The connection starts unjoined; the first accepted message must be a
//     join, which creates a session and announces the player.
//  3. Subsequent move/combat/chat frames are validated and relayed.
//  4. Disconnection, a socket error, or a failed liveness check removes the
//     session and announces the departure exactly once.
//
// Liveness:
//
// A periodic sweep clears each connection's alive flag and sends a ping;
// a pong sets the flag again. A connection whose flag is still cleared at
// the next sweep is forcibly closed, so an unresponsive peer is purged
// within two sweep intervals.
//
// Usage:
//
//	registry := session.NewRegistry()
//	hub := websocket.NewHub(registry, 30*time.Second)
//	go hub.Run()
//	http.HandleFunc("/ws", hub.ServeWS)
package websocket
