package session

import "github.com/google/uuid"

// Conn is the transport handle a session is reached through. Send queues a
// frame for delivery and reports false when the connection can no longer
// accept writes; the registry treats that as a skip, never an error.
type Conn interface {
	Send(data []byte) bool
}

// Session represents one joined player.
type Session struct {
	// ID uniquely identifies the session among concurrently open ones.
	// It is generated server-side and never client-supplied.
	ID string

	// Name is the sanitized display name from the join message.
	Name string

	// Conn is the session's connection, exclusively owned by it.
	Conn Conn
}

// New creates a session with a fresh id for the given name and connection.
func New(name string, conn Conn) *Session {
	return &Session{
		ID:   uuid.NewString(),
		Name: name,
		Conn: conn,
	}
}
