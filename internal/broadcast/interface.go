package broadcast

import (
	"context"

	"github.com/idreesmuhammadqazi-create/MUN/internal/connection"
)

// Connections is the registry surface the dispatcher reads from.
type Connections interface {
	ConnectionsForSession(sessionID string) []string
	Transport(connID string) (connection.Transport, bool)
}

// Broadcaster delivers server messages to connections.
type Broadcaster interface {
	// ToSession delivers payload to every deliverable connection bound to
	// sessionID and returns how many accepted it.
	ToSession(ctx context.Context, sessionID string, payload any) int

	// ToConnection delivers payload to one connection.
	ToConnection(ctx context.Context, connID string, payload any) error
}
