package router

import "github.com/idreesmuhammadqazi-create/MUN/internal/model"

// TaskPlan is the ordered list of specialists a message needs. Each entry
// after the first depends on the one before it.
type TaskPlan struct {
	AgentTypes []model.AgentType `json:"agentTypes"`
	Priority   model.Priority    `json:"priority"`
	Reasons    []string          `json:"reasons,omitempty"`
}
