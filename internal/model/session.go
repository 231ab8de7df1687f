package model

import "time"

// Phase is the workflow stage of a committee session.
type Phase string

const (
	PhaseLobby             Phase = "lobby"
	PhaseOpeningSpeeches   Phase = "opening_speeches"
	PhaseModeratedCaucus   Phase = "moderated_caucus"
	PhaseUnmoderatedCaucus Phase = "unmoderated_caucus"
	PhaseDrafting          Phase = "drafting"
	PhaseVoting            Phase = "voting"
	PhaseCrisis            Phase = "crisis"
)

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	switch p {
	case PhaseLobby, PhaseOpeningSpeeches, PhaseModeratedCaucus, PhaseUnmoderatedCaucus,
		PhaseDrafting, PhaseVoting, PhaseCrisis:
		return true
	}
	return false
}

// Representation is who the delegates represent and where.
type Representation struct {
	Country   string `json:"country,omitempty"`
	Council   string `json:"council,omitempty"`
	Committee string `json:"committee,omitempty"`
	Topic     string `json:"topic,omitempty"`
}

// Document describes an uploaded file attached to the session's agent context.
type Document struct {
	Filename   string    `json:"filename"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	Summary    string    `json:"summary,omitempty"`
	UploadedBy string    `json:"uploadedBy,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// AgentContext is the payload shared with specialists beyond the chat history.
type AgentContext struct {
	Documents []Document     `json:"documents,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// Session is a long-lived conversational context for one committee.
type Session struct {
	ID             string         `json:"id"`
	Representation Representation `json:"representation"`
	CurrentPhase   Phase          `json:"currentPhase"`
	PhaseData      map[string]any `json:"phaseData"`
	Messages       []Message      `json:"messages"`
	AgentContext   AgentContext   `json:"agentContext"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
