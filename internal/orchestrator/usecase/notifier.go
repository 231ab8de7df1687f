package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/idreesmuhammadqazi-create/MUN/internal/broadcast"
	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator"
	"github.com/idreesmuhammadqazi-create/MUN/internal/scheduler"
	"github.com/idreesmuhammadqazi-create/MUN/internal/session"
	pkgLog "github.com/idreesmuhammadqazi-create/MUN/pkg/log"
)

type notifier struct {
	l           pkgLog.Logger
	sessions    session.Store
	broadcaster broadcast.Broadcaster
	now         func() time.Time
}

// NewNotifier returns the scheduler.Notifier that records specialist output in
// session history and fans task transitions out to the session.
func NewNotifier(l pkgLog.Logger, sessions session.Store, broadcaster broadcast.Broadcaster) scheduler.Notifier {
	return &notifier{
		l:           l,
		sessions:    sessions,
		broadcaster: broadcaster,
		now:         time.Now,
	}
}

func (n *notifier) TaskStarted(ctx context.Context, task model.Task) {
	n.status(ctx, task, orchestrator.AgentStatusWorking)
}

func (n *notifier) TaskCompleted(ctx context.Context, task model.Task) {
	var res model.Result
	if task.Result != nil {
		res = *task.Result
	}

	n.record(ctx, task, res.Content, res.Metadata, res.Confidence, false)
	n.broadcaster.ToSession(ctx, task.SessionID(), orchestrator.AgentResponseMessage{
		Type:       orchestrator.TypeAgentResponse,
		AgentType:  task.AgentType,
		Content:    res.Content,
		TaskID:     task.ID,
		Metadata:   res.Metadata,
		Sources:    res.Sources,
		Confidence: res.Confidence,
	})
	n.status(ctx, task, orchestrator.AgentStatusCompleted)
}

func (n *notifier) TaskFailed(ctx context.Context, task model.Task) {
	content := fmt.Sprintf("The %s specialist could not complete this request: %s", task.AgentType, task.Error)

	n.record(ctx, task, content, nil, 0, true)
	n.broadcaster.ToSession(ctx, task.SessionID(), orchestrator.AgentResponseMessage{
		Type:      orchestrator.TypeAgentResponse,
		AgentType: task.AgentType,
		Content:   content,
		TaskID:    task.ID,
		Metadata:  map[string]any{"error": task.Error},
		IsError:   true,
	})
	n.status(ctx, task, orchestrator.AgentStatusFailed)
}

func (n *notifier) status(ctx context.Context, task model.Task, status string) {
	n.broadcaster.ToSession(ctx, task.SessionID(), orchestrator.AgentStatusMessage{
		Type:      orchestrator.TypeAgentStatus,
		AgentType: task.AgentType,
		Status:    status,
		TaskID:    task.ID,
	})
}

func (n *notifier) record(ctx context.Context, task model.Task, content string, metadata map[string]any, confidence float64, isError bool) {
	err := n.sessions.AppendMessage(task.SessionID(), model.Message{
		ID:         uuid.NewString(),
		SessionID:  task.SessionID(),
		Role:       model.RoleAgent,
		AgentType:  task.AgentType,
		TaskID:     task.ID,
		Content:    content,
		Metadata:   metadata,
		Confidence: confidence,
		IsError:    isError,
		Timestamp:  n.now(),
	})
	if err != nil {
		n.l.Errorf(ctx, "%s: record task %s: %v", LogPrefixNotifier, task.ID, err)
	}
}
