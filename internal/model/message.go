package model

import "time"

// Role identifies who authored a message.
type Role string

const (
	RoleUser   Role = "user"
	RoleAgent  Role = "agent"
	RoleSystem Role = "system"
)

// Message is one entry in a session's chat history.
type Message struct {
	ID         string         `json:"id"`
	SessionID  string         `json:"sessionId"`
	UserID     string         `json:"userId,omitempty"`
	Role       Role           `json:"role"`
	AgentType  AgentType      `json:"agentType,omitempty"`
	TaskID     string         `json:"taskId,omitempty"`
	Content    string         `json:"content"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Confidence float64        `json:"confidence,omitempty"`
	IsError    bool           `json:"isError,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}
