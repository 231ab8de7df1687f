package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator"
	"github.com/idreesmuhammadqazi-create/MUN/internal/router"
)

// HandleChat stores and broadcasts the user's message before planning.
func (uc *implUseCase) HandleChat(ctx context.Context, sc model.Scope, input orchestrator.ChatInput) (orchestrator.ChatOutput, error) {
	sc, err := uc.bind(sc)
	if err != nil {
		return orchestrator.ChatOutput{}, err
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return orchestrator.ChatOutput{}, orchestrator.ErrEmptyContent
	}

	sess, err := uc.sessions.GetOrCreate(sc.SessionID)
	if err != nil {
		return orchestrator.ChatOutput{}, err
	}

	msg := model.Message{
		ID:        uuid.NewString(),
		SessionID: sc.SessionID,
		UserID:    sc.UserID,
		Role:      model.RoleUser,
		Content:   content,
		Metadata:  input.Metadata,
		Timestamp: uc.now(),
	}
	if err := uc.sessions.AppendMessage(sc.SessionID, msg); err != nil {
		return orchestrator.ChatOutput{}, err
	}
	uc.broadcaster.ToSession(ctx, sc.SessionID, orchestrator.ChatMessage{
		Type:    orchestrator.TypeMessage,
		Message: msg,
	})
	out := orchestrator.ChatOutput{Message: msg}

	plan, err := uc.router.Classify(content, sess)
	if err != nil {
		uc.l.Errorf(ctx, "%s: classify: %v", LogPrefixHandleChat, err)
		uc.broadcastSystemError(ctx, sc.SessionID, "Could not plan a response to that message: "+err.Error())
		return out, nil
	}
	out.Plan = plan

	tasks := uc.buildTasks(sc, sess, msg, plan)
	queued, err := uc.scheduler.Enqueue(ctx, tasks...)
	if err != nil {
		uc.l.Errorf(ctx, "%s: enqueue: %v", LogPrefixHandleChat, err)
		uc.broadcastSystemError(ctx, sc.SessionID, "Could not schedule specialists for that message: "+err.Error())
		return out, fmt.Errorf("enqueue tasks: %w", err)
	}
	out.Tasks = queued

	uc.l.Infof(ctx, "%s: planned %v at %s (%s)", LogPrefixHandleChat, plan.AgentTypes, plan.Priority, strings.Join(plan.Reasons, "; "))
	return out, nil
}

// buildTasks turns a plan into a linear chain: each task depends on the one
// before it. Every task gets its own copy of the context.
func (uc *implUseCase) buildTasks(sc model.Scope, sess model.Session, msg model.Message, plan router.TaskPlan) []model.Task {
	tc := model.TaskContext{
		SessionID:      sc.SessionID,
		UserID:         sc.UserID,
		Phase:          sess.CurrentPhase,
		Representation: sess.Representation,
		PhaseData:      sess.PhaseData,
		RecentMessages: uc.sessions.Recent(sc.SessionID, uc.contextWindow),
		Documents:      sess.AgentContext.Documents,
		Metadata:       msg.Metadata,
	}

	now := uc.now()
	tasks := make([]model.Task, 0, len(plan.AgentTypes))
	prev := ""
	for _, agentType := range plan.AgentTypes {
		t := model.Task{
			ID:        uuid.NewString(),
			AgentType: agentType,
			Priority:  plan.Priority,
			Query:     msg.Content,
			Context:   tc.Clone(),
			CreatedAt: now,
		}
		if prev != "" {
			t.DependsOn = []string{prev}
		}
		prev = t.ID
		tasks = append(tasks, t)
	}
	return tasks
}

func (uc *implUseCase) broadcastSystemError(ctx context.Context, sessionID, content string) {
	uc.broadcaster.ToSession(ctx, sessionID, orchestrator.AgentResponseMessage{
		Type:      orchestrator.TypeAgentResponse,
		AgentType: model.AgentSystem,
		Content:   content,
		IsError:   true,
	})
}
