package scheduler

import (
	"context"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/internal/specialist"
)

// Resolver finds the specialist for a task type.
type Resolver interface {
	Get(agentType model.AgentType) (specialist.Specialist, bool)
}

// Notifier receives task transitions. Calls happen outside the scheduler
// lock, in transition order for any single task.
type Notifier interface {
	TaskStarted(ctx context.Context, task model.Task)
	TaskCompleted(ctx context.Context, task model.Task)
	TaskFailed(ctx context.Context, task model.Task)
}
