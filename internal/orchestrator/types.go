package orchestrator

import (
	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/internal/router"
)

// AuthInput is the payload of an auth request.
type AuthInput struct {
	UserID    string
	SessionID string
}

// ChatInput is one user chat message.
type ChatInput struct {
	Content  string
	Metadata map[string]any
}

// ChatOutput reports what a chat message produced.
type ChatOutput struct {
	Message model.Message
	Plan    router.TaskPlan
	Tasks   []model.Task
}

// SessionUpdateInput is a partial session update. Nil fields are left untouched.
type SessionUpdateInput struct {
	Phase     *string
	PhaseData map[string]any
	Country   *string
	Council   *string
	Committee *string
	Topic     *string
}

// DocumentInput describes an uploaded document. Content is used only to
// derive a summary and is never stored.
type DocumentInput struct {
	Filename string
	FileType string
	FileSize int64
	Content  string
	Summary  string
}
