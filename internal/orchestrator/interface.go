package orchestrator

import (
	"context"

	"github.com/idreesmuhammadqazi-create/MUN/internal/connection"
	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/internal/scheduler"
)

// UseCase coordinates connections, sessions, planning and task dispatch.
type UseCase interface {
	// Connect registers a transport and greets it with its connection id.
	Connect(ctx context.Context, t connection.Transport) string

	// Disconnect forgets a connection.
	Disconnect(ctx context.Context, connID string)

	// Touch records activity on a connection.
	Touch(connID string)

	// Authenticate binds a connection to a session, creating the session if needed.
	Authenticate(ctx context.Context, connID string, input AuthInput) (model.Session, error)

	// HandleChat stores and broadcasts a user message, then plans and queues specialist tasks.
	HandleChat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// UpdateSession applies a partial update and broadcasts the new snapshot.
	UpdateSession(ctx context.Context, sc model.Scope, input SessionUpdateInput) (model.Session, error)

	// UploadDocument attaches a document descriptor to the session.
	UploadDocument(ctx context.Context, sc model.Scope, input DocumentInput) (model.Document, error)

	// ReportStatus unicasts the scheduler status of the caller's session.
	ReportStatus(ctx context.Context, sc model.Scope) error

	// NotifyError unicasts an error message to one connection.
	NotifyError(ctx context.Context, connID string, message string)

	Session(sessionID string) (model.Session, bool)
	SchedulerStatus(sessionID string) scheduler.Status
	ConnectionCount() int
}

// TaskScheduler is the scheduler surface the use case drives.
type TaskScheduler interface {
	Enqueue(ctx context.Context, tasks ...model.Task) ([]model.Task, error)
	Status(sessionID string) scheduler.Status
}
