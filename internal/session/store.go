package session

import (
	"maps"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
)

// entryFor returns the entry for id, creating it when create is set.
func (s *store) entryFor(id string, create bool) *entry {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok || !create {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[id]; ok {
		return e
	}
	now := s.now()
	e = &entry{session: model.Session{
		ID:           id,
		CurrentPhase: model.PhaseLobby,
		PhaseData:    map[string]any{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}}
	s.sessions[id] = e
	return e
}

func (s *store) GetOrCreate(sessionID string) (model.Session, error) {
	if sessionID == "" {
		return model.Session{}, ErrEmptySessionID
	}
	e := s.entryFor(sessionID, true)
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneSession(e.session), nil
}

func (s *store) Get(sessionID string) (model.Session, bool) {
	e := s.entryFor(sessionID, false)
	if e == nil {
		return model.Session{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneSession(e.session), true
}

func (s *store) ApplyUpdate(sessionID string, input UpdateInput) (model.Session, error) {
	if sessionID == "" {
		return model.Session{}, ErrEmptySessionID
	}
	if input.Phase != nil && !input.Phase.Valid() {
		return model.Session{}, ErrInvalidPhase
	}

	e := s.entryFor(sessionID, true)
	e.mu.Lock()
	defer e.mu.Unlock()

	sess := &e.session
	if input.Phase != nil {
		sess.CurrentPhase = *input.Phase
	}
	if len(input.PhaseData) > 0 {
		if sess.PhaseData == nil {
			sess.PhaseData = make(map[string]any, len(input.PhaseData))
		}
		maps.Copy(sess.PhaseData, input.PhaseData)
	}
	if input.Country != nil {
		sess.Representation.Country = *input.Country
	}
	if input.Council != nil {
		sess.Representation.Council = *input.Council
	}
	if input.Committee != nil {
		sess.Representation.Committee = *input.Committee
	}
	if input.Topic != nil {
		sess.Representation.Topic = *input.Topic
	}
	sess.UpdatedAt = s.now()

	return cloneSession(*sess), nil
}

func (s *store) AppendMessage(sessionID string, msg model.Message) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}

	e := s.entryFor(sessionID, true)
	e.mu.Lock()
	defer e.mu.Unlock()

	msgs := append(e.session.Messages, msg)
	if over := len(msgs) - s.historyCap; over > 0 {
		// Copy into a fresh slice so evicted messages are not pinned by the backing array.
		msgs = append([]model.Message(nil), msgs[over:]...)
	}
	e.session.Messages = msgs
	e.session.UpdatedAt = s.now()
	return nil
}

func (s *store) Recent(sessionID string, n int) []model.Message {
	e := s.entryFor(sessionID, false)
	if e == nil || n <= 0 {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	msgs := e.session.Messages
	if len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	return cloneMessages(msgs)
}

func (s *store) AttachDocument(sessionID string, doc model.Document) (model.Session, error) {
	if sessionID == "" {
		return model.Session{}, ErrEmptySessionID
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = s.now()
	}

	e := s.entryFor(sessionID, true)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.AgentContext.Documents = append(e.session.AgentContext.Documents, doc)
	e.session.UpdatedAt = s.now()
	return cloneSession(e.session), nil
}

func cloneSession(in model.Session) model.Session {
	out := in
	out.PhaseData = model.CloneMap(in.PhaseData)
	out.Messages = cloneMessages(in.Messages)
	out.AgentContext.Documents = append([]model.Document(nil), in.AgentContext.Documents...)
	out.AgentContext.Extra = model.CloneMap(in.AgentContext.Extra)
	return out
}

func cloneMessages(in []model.Message) []model.Message {
	if in == nil {
		return nil
	}
	out := make([]model.Message, len(in))
	for i, m := range in {
		out[i] = m
		out[i].Metadata = model.CloneMap(m.Metadata)
	}
	return out
}
