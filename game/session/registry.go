package session

import (
	"encoding/json"
	"log"
	"sync"
)

// Registry is the live collection of joined sessions, keyed by session id.
type Registry struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Add inserts a session. Ids are freshly generated, so a collision with an
// existing entry does not happen in practice.
func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID] = s
}

// Remove deletes the session for id and returns it so the caller can use
// its name for a departure notification. Removing an absent id is a no-op,
// which makes the close/error/liveness cleanup paths idempotent.
func (r *Registry) Remove(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	delete(r.sessions, id)
	return s, true
}

// Get retrieves a session by id.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of joined sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// List returns a snapshot of all sessions, in no particular order.
func (r *Registry) List() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	return sessions
}

// Broadcast serializes v once and sends it to every session except the one
// identified by excludeID (empty excludeID means everyone). Sessions whose
// connection cannot accept the frame are silently skipped; tearing them
// down is the close handler's job, not the broadcaster's.
func (r *Registry) Broadcast(v any, excludeID string) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to marshal broadcast message: %v", err)
		return
	}

	for _, s := range r.List() {
		if s.ID == excludeID {
			continue
		}
		s.Conn.Send(data)
	}
}
