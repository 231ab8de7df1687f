package orchestrator

import (
	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/internal/scheduler"
)

// Server message types
const (
	TypeSystem            = "system"
	TypeAuthSuccess       = "auth_success"
	TypeMessage           = "message"
	TypeAgentStatus       = "agent_status"
	TypeAgentResponse     = "agent_response"
	TypeSessionUpdate     = "session_update"
	TypeDocumentProcessed = "document_processed"
	TypeError             = "error"
)

// Agent status values
const (
	AgentStatusWorking   = "working"
	AgentStatusCompleted = "completed"
	AgentStatusFailed    = "failed"
)

type SystemMessage struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	ClientID string `json:"clientId"`
}

type AuthSuccessMessage struct {
	Type      string `json:"type"`
	ClientID  string `json:"clientId"`
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
}

// ChatMessage carries a full message record.
type ChatMessage struct {
	Type string `json:"type"`
	model.Message
}

type AgentStatusMessage struct {
	Type      string          `json:"type"`
	AgentType model.AgentType `json:"agentType"`
	Status    string          `json:"status"`
	TaskID    string          `json:"taskId"`
}

type AgentStatusBatchMessage struct {
	Type         string                 `json:"type"`
	ActiveAgents []scheduler.ActiveTask `json:"activeAgents"`
	QueueLength  int                    `json:"queueLength"`
}

type AgentResponseMessage struct {
	Type       string          `json:"type"`
	AgentType  model.AgentType `json:"agentType"`
	Content    string          `json:"content"`
	TaskID     string          `json:"taskId,omitempty"`
	Metadata   map[string]any  `json:"metadata,omitempty"`
	Sources    []string        `json:"sources,omitempty"`
	Confidence float64         `json:"confidence"`
	IsError    bool            `json:"isError"`
}

// SessionView is the wire form of a session snapshot.
type SessionView struct {
	ID           string         `json:"id"`
	CurrentPhase model.Phase    `json:"currentPhase"`
	PhaseData    map[string]any `json:"phaseData"`
	Country      string         `json:"country"`
	Council      string         `json:"council"`
	Committee    string         `json:"committee"`
	Topic        string         `json:"topic"`
}

type SessionUpdateMessage struct {
	Type    string      `json:"type"`
	Session SessionView `json:"session"`
}

type DocumentProcessedMessage struct {
	Type         string         `json:"type"`
	DocumentInfo model.Document `json:"documentInfo"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewSessionView builds the wire snapshot of sess.
func NewSessionView(sess model.Session) SessionView {
	phaseData := sess.PhaseData
	if phaseData == nil {
		phaseData = map[string]any{}
	}
	return SessionView{
		ID:           sess.ID,
		CurrentPhase: sess.CurrentPhase,
		PhaseData:    phaseData,
		Country:      sess.Representation.Country,
		Council:      sess.Representation.Council,
		Committee:    sess.Representation.Committee,
		Topic:        sess.Representation.Topic,
	}
}
