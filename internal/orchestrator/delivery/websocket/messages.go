package websocket

import (
	"encoding/json"
	"fmt"
)

// Client message types
const (
	TypeAuth            = "auth"
	TypeChat            = "chat"
	TypeSessionUpdate   = "session_update"
	TypeVoiceTranscript = "voice_transcript"
	TypeDocumentUpload  = "document_upload"
	TypeAgentStatus     = "agent_status"
)

// clientMessage is one decoded inbound message. The set of implementations
// is closed; dispatch switches over all of them.
type clientMessage interface {
	clientMessage()
}

type authRequest struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
}

type chatRequest struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

type sessionUpdateRequest struct {
	Phase     *string        `json:"phase"`
	Country   *string        `json:"country"`
	Council   *string        `json:"council"`
	Committee *string        `json:"committee"`
	Topic     *string        `json:"topic"`
	PhaseData map[string]any `json:"phaseData"`
}

type voiceTranscriptRequest struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	Duration   float64 `json:"duration"`
}

type documentInfo struct {
	Filename string `json:"filename"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
	Content  string `json:"content"`
	Summary  string `json:"summary"`
}

type documentUploadRequest struct {
	DocumentInfo documentInfo `json:"documentInfo"`
}

type agentStatusRequest struct{}

type unknownRequest struct {
	Type string
}

func (authRequest) clientMessage()            {}
func (chatRequest) clientMessage()            {}
func (sessionUpdateRequest) clientMessage()   {}
func (voiceTranscriptRequest) clientMessage() {}
func (documentUploadRequest) clientMessage()  {}
func (agentStatusRequest) clientMessage()     {}
func (unknownRequest) clientMessage()         {}

type envelope struct {
	Type string `json:"type"`
}

// decode parses one inbound frame. Unknown types decode to unknownRequest.
func decode(data []byte) (clientMessage, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Type == "" {
		return nil, ErrMissingType
	}

	var msg clientMessage
	var err error
	switch env.Type {
	case TypeAuth:
		var m authRequest
		err = json.Unmarshal(data, &m)
		msg = m
	case TypeChat:
		var m chatRequest
		err = json.Unmarshal(data, &m)
		msg = m
	case TypeSessionUpdate:
		var m sessionUpdateRequest
		err = json.Unmarshal(data, &m)
		msg = m
	case TypeVoiceTranscript:
		var m voiceTranscriptRequest
		err = json.Unmarshal(data, &m)
		msg = m
	case TypeDocumentUpload:
		var m documentUploadRequest
		err = json.Unmarshal(data, &m)
		msg = m
	case TypeAgentStatus:
		msg = agentStatusRequest{}
	default:
		msg = unknownRequest{Type: env.Type}
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", env.Type, err)
	}
	return msg, nil
}
