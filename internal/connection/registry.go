package connection

import (
	"github.com/google/uuid"
)

// Register stores a new connection and returns its freshly allocated id.
func (r *registry) Register(t Transport) string {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[id] = &entry{
		id:           id,
		transport:    t,
		lastActivity: r.now(),
	}
	return id
}

// BindSession attaches a connection to a session. Rebinding to the same
// session is a no-op; a different session is refused. Unknown connections are ignored.
func (r *registry) BindSession(connID, sessionID string) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.conns[connID]
	if !ok {
		return nil
	}
	if e.sessionID == sessionID {
		return nil
	}
	if e.sessionID != "" {
		return ErrAlreadyBound
	}

	e.sessionID = sessionID
	members, ok := r.bySession[sessionID]
	if !ok {
		members = make(map[string]struct{})
		r.bySession[sessionID] = members
	}
	members[connID] = struct{}{}
	e.lastActivity = r.now()
	return nil
}

// Touch records activity on a connection.
func (r *registry) Touch(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.conns[connID]; ok {
		e.lastActivity = r.now()
	}
}

// Unregister forgets a connection. It does not close the transport.
func (r *registry) Unregister(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(connID)
}

func (r *registry) removeLocked(connID string) *entry {
	e, ok := r.conns[connID]
	if !ok {
		return nil
	}
	delete(r.conns, connID)
	if e.sessionID != "" {
		if members, ok := r.bySession[e.sessionID]; ok {
			delete(members, connID)
			if len(members) == 0 {
				delete(r.bySession, e.sessionID)
			}
		}
	}
	return e
}

// ConnectionsForSession returns the ids of connections bound to sessionID.
func (r *registry) ConnectionsForSession(sessionID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.bySession[sessionID]
	ids := make([]string, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	return ids
}

// SessionOf returns the session a connection is bound to.
func (r *registry) SessionOf(connID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.conns[connID]
	if !ok || e.sessionID == "" {
		return "", false
	}
	return e.sessionID, true
}

// Transport returns the delivery handle of a live connection.
func (r *registry) Transport(connID string) (Transport, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.conns[connID]
	if !ok {
		return nil, false
	}
	return e.transport, true
}

// Count returns the number of live connections.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
