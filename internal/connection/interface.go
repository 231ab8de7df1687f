package connection

import "context"

// Transport is the opaque per-connection delivery handle.
type Transport interface {
	// Send queues payload for delivery. It must not block on network I/O.
	Send(payload []byte) error

	// Deliverable reports whether the transport can still accept payloads.
	Deliverable() bool

	// Close tears the transport down. Safe to call more than once.
	Close() error
}

// Registry owns live connections and their session bindings.
type Registry interface {
	Register(t Transport) string
	BindSession(connID, sessionID string) error
	Touch(connID string)
	Unregister(connID string)
	ConnectionsForSession(sessionID string) []string
	SessionOf(connID string) (string, bool)
	Transport(connID string) (Transport, bool)
	Count() int
	Run(ctx context.Context) error
	Running() bool
}
