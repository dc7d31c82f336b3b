// Package session tracks the players currently connected to the relay.
//
// A Session is created when a connection sends a valid join and destroyed
// when the connection closes, errors, or fails a liveness check. The
// Registry is the single source of truth for "who is connected" and owns
// the broadcast fan-out.
//
// Session Identifiers:
//
// Sessions use server-generated UUIDs. Clients never supply their own id;
// the id is assigned at join time and returned in the joined reply.
//
// Concurrency:
//
// The registry is thread-safe. Broadcast iterates a snapshot of the live
// sessions so concurrent registration or removal never invalidates the
// fan-out loop.
package session
