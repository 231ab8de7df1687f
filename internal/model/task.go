package model

import "time"

// AgentType tags the specialist that fulfils a task.
type AgentType string

const (
	AgentResearch  AgentType = "research"
	AgentProcedure AgentType = "procedure"
	AgentWriting   AgentType = "writing"
	AgentCrisis    AgentType = "crisis"
	AgentAnalysis  AgentType = "analysis"

	// AgentSystem is used for coordinator-level replies that no specialist produced.
	AgentSystem AgentType = "system"
)

// AgentTypes lists every specialist type in canonical chain order.
var AgentTypes = []AgentType{AgentResearch, AgentAnalysis, AgentCrisis, AgentProcedure, AgentWriting}

// Priority is the scheduling priority of a task.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank orders priorities; higher runs first. Unknown priorities rank below low.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskFailed     TaskStatus = "failed"
)

// IsTerminal returns true if this status represents a final state.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskCompleted || s == TaskFailed
}

// TaskContext is the snapshot of session state handed to a specialist.
type TaskContext struct {
	SessionID      string         `json:"sessionId"`
	UserID         string         `json:"userId,omitempty"`
	Phase          Phase          `json:"phase"`
	Representation Representation `json:"representation"`
	PhaseData      map[string]any `json:"phaseData,omitempty"`
	RecentMessages []Message      `json:"recentMessages,omitempty"`
	Documents      []Document     `json:"documents,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`

	// Upstream holds the results of completed dependencies, filled in when the task starts.
	Upstream []UpstreamResult `json:"upstream,omitempty"`
}

// UpstreamResult is a finished dependency's output as seen by its dependent.
type UpstreamResult struct {
	TaskID    string    `json:"taskId"`
	AgentType AgentType `json:"agentType"`
	Content   string    `json:"content"`
	Sources   []string  `json:"sources,omitempty"`
}

// Result is what a specialist produces for one task.
type Result struct {
	Content    string         `json:"content"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Sources    []string       `json:"sources,omitempty"`
	Confidence float64        `json:"confidence"`
}

// Task is one unit of work delegated to a specialist.
type Task struct {
	ID        string      `json:"id"`
	AgentType AgentType   `json:"agentType"`
	Priority  Priority    `json:"priority"`
	Query     string      `json:"query"`
	Context   TaskContext `json:"context"`
	DependsOn []string    `json:"dependsOn,omitempty"`
	Status    TaskStatus  `json:"status"`
	Result    *Result     `json:"result,omitempty"`
	Error     string      `json:"error,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// SessionID returns the session the task belongs to.
func (t Task) SessionID() string {
	return t.Context.SessionID
}
