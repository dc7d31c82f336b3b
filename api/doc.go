// Package api exposes the relay server's HTTP surface: a plain-text health
// line at the root and the WebSocket upgrade endpoint at /ws. Both are
// served on the same port.
package api
