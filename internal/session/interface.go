package session

import "github.com/idreesmuhammadqazi-create/MUN/internal/model"

// Store owns per-session conversational and phase state.
// Returned sessions are copies; mutating them does not affect the store.
type Store interface {
	// GetOrCreate returns the session, creating it in the lobby phase on first access.
	GetOrCreate(sessionID string) (model.Session, error)

	// Get returns the session without creating it.
	Get(sessionID string) (model.Session, bool)

	// ApplyUpdate merges the non-nil fields of input into the session.
	ApplyUpdate(sessionID string, input UpdateInput) (model.Session, error)

	// AppendMessage appends to the history and evicts the oldest entries beyond the cap.
	AppendMessage(sessionID string, msg model.Message) error

	// Recent returns up to n of the newest messages, oldest first.
	Recent(sessionID string, n int) []model.Message

	// AttachDocument records a document descriptor in the agent context.
	AttachDocument(sessionID string, doc model.Document) (model.Session, error)
}
