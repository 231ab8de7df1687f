package scheduler

import (
	"time"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
)

// DependencyPolicy decides what a failed dependency means for its dependents.
type DependencyPolicy string

const (
	// PolicyFailOpen treats a failed dependency as resolved.
	PolicyFailOpen DependencyPolicy = "fail_open"
	// PolicyCascade fails dependents of a failed task without running them.
	PolicyCascade DependencyPolicy = "cascade"
)

// Config controls scheduling limits.
type Config struct {
	MaxConcurrent    int
	TickInterval     time.Duration
	TaskTimeout      time.Duration
	DependencyPolicy DependencyPolicy
	TerminalTTL      time.Duration
	TerminalCapacity int
}

const (
	DefaultMaxConcurrent    = 5
	DefaultTickInterval     = time.Second
	DefaultTaskTimeout      = 90 * time.Second
	DefaultTerminalTTL      = 10 * time.Minute
	DefaultTerminalCapacity = 4096
)

// Log prefixes
const (
	LogPrefixEnqueue = "internal.scheduler.Enqueue"
	LogPrefixExecute = "internal.scheduler.execute"
	LogPrefixPass    = "internal.scheduler.schedulePass"
)

// ActiveTask is the status view of one in-flight task.
type ActiveTask struct {
	TaskID    string           `json:"taskId"`
	SessionID string           `json:"sessionId"`
	AgentType model.AgentType  `json:"agentType"`
	Status    model.TaskStatus `json:"status"`
	Priority  model.Priority   `json:"priority"`
	StartedAt time.Time        `json:"startedAt"`
}

// Status is a point-in-time snapshot of the scheduler.
type Status struct {
	ActiveAgents  []ActiveTask `json:"activeAgents"`
	QueueLength   int          `json:"queueLength"`
	MaxConcurrent int          `json:"maxConcurrent"`
}

type queuedTask struct {
	task *model.Task
	seq  uint64
}

// terminalOutcome is what the scheduler remembers about a finished task.
type terminalOutcome struct {
	status    model.TaskStatus
	agentType model.AgentType
	result    *model.Result
}

type depState int

const (
	depReady depState = iota
	depBlocked
	depFailed
)
