package specialist

import (
	"context"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/pkg/claude"
)

// Specialist fulfils tasks of one agent type.
type Specialist interface {
	// Type returns the agent type this specialist handles.
	Type() model.AgentType

	// Handle answers query using the task context. It must honour ctx cancellation.
	Handle(ctx context.Context, query string, tc model.TaskContext) (model.Result, error)
}

// Completer is the LLM surface the built-in specialists need.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (claude.Completion, error)
	Model() string
}
