package http

import (
	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/internal/scheduler"
	"github.com/idreesmuhammadqazi-create/MUN/pkg/response"
)

// --- Response DTOs ---

type messageResp struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id,omitempty"`
	Role       model.Role        `json:"role"`
	AgentType  model.AgentType   `json:"agent_type,omitempty"`
	TaskID     string            `json:"task_id,omitempty"`
	Content    string            `json:"content"`
	Confidence float64           `json:"confidence,omitempty"`
	IsError    bool              `json:"is_error,omitempty"`
	Timestamp  response.DateTime `json:"timestamp"`
}

type documentResp struct {
	Filename   string            `json:"filename"`
	FileType   string            `json:"file_type"`
	FileSize   int64             `json:"file_size"`
	Summary    string            `json:"summary,omitempty"`
	UploadedBy string            `json:"uploaded_by,omitempty"`
	UploadedAt response.DateTime `json:"uploaded_at"`
}

type sessionResp struct {
	ID           string            `json:"id"`
	CurrentPhase model.Phase       `json:"current_phase"`
	PhaseData    map[string]any    `json:"phase_data"`
	Country      string            `json:"country"`
	Council      string            `json:"council"`
	Committee    string            `json:"committee"`
	Topic        string            `json:"topic"`
	Messages     []messageResp     `json:"messages"`
	Documents    []documentResp    `json:"documents"`
	CreatedAt    response.DateTime `json:"created_at"`
	UpdatedAt    response.DateTime `json:"updated_at"`
}

type activeTaskResp struct {
	TaskID    string            `json:"task_id"`
	SessionID string            `json:"session_id"`
	AgentType model.AgentType   `json:"agent_type"`
	Status    model.TaskStatus  `json:"status"`
	Priority  model.Priority    `json:"priority"`
	StartedAt response.DateTime `json:"started_at"`
}

type schedulerStatusResp struct {
	ActiveAgents  []activeTaskResp `json:"active_agents"`
	QueueLength   int              `json:"queue_length"`
	MaxConcurrent int              `json:"max_concurrent"`
}

type connectionCountResp struct {
	Count int `json:"count"`
}

func newSessionResp(s model.Session) sessionResp {
	phaseData := s.PhaseData
	if phaseData == nil {
		phaseData = map[string]any{}
	}
	resp := sessionResp{
		ID:           s.ID,
		CurrentPhase: s.CurrentPhase,
		PhaseData:    phaseData,
		Country:      s.Representation.Country,
		Council:      s.Representation.Council,
		Committee:    s.Representation.Committee,
		Topic:        s.Representation.Topic,
		Messages:     make([]messageResp, 0, len(s.Messages)),
		Documents:    make([]documentResp, 0, len(s.AgentContext.Documents)),
		CreatedAt:    response.DateTime(s.CreatedAt),
		UpdatedAt:    response.DateTime(s.UpdatedAt),
	}
	for _, m := range s.Messages {
		resp.Messages = append(resp.Messages, messageResp{
			ID:         m.ID,
			UserID:     m.UserID,
			Role:       m.Role,
			AgentType:  m.AgentType,
			TaskID:     m.TaskID,
			Content:    m.Content,
			Confidence: m.Confidence,
			IsError:    m.IsError,
			Timestamp:  response.DateTime(m.Timestamp),
		})
	}
	for _, d := range s.AgentContext.Documents {
		resp.Documents = append(resp.Documents, documentResp{
			Filename:   d.Filename,
			FileType:   d.FileType,
			FileSize:   d.FileSize,
			Summary:    d.Summary,
			UploadedBy: d.UploadedBy,
			UploadedAt: response.DateTime(d.UploadedAt),
		})
	}
	return resp
}

func newSchedulerStatusResp(st scheduler.Status) schedulerStatusResp {
	resp := schedulerStatusResp{
		ActiveAgents:  make([]activeTaskResp, 0, len(st.ActiveAgents)),
		QueueLength:   st.QueueLength,
		MaxConcurrent: st.MaxConcurrent,
	}
	for _, a := range st.ActiveAgents {
		resp.ActiveAgents = append(resp.ActiveAgents, activeTaskResp{
			TaskID:    a.TaskID,
			SessionID: a.SessionID,
			AgentType: a.AgentType,
			Status:    a.Status,
			Priority:  a.Priority,
			StartedAt: response.DateTime(a.StartedAt),
		})
	}
	return resp
}
