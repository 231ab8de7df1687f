package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator"
	"github.com/idreesmuhammadqazi-create/MUN/internal/scheduler"
	"github.com/idreesmuhammadqazi-create/MUN/internal/session"
)

func (uc *implUseCase) UpdateSession(ctx context.Context, sc model.Scope, input orchestrator.SessionUpdateInput) (model.Session, error) {
	sc, err := uc.bind(sc)
	if err != nil {
		return model.Session{}, err
	}

	upd := session.UpdateInput{
		PhaseData: input.PhaseData,
		Country:   input.Country,
		Council:   input.Council,
		Committee: input.Committee,
		Topic:     input.Topic,
	}
	if input.Phase != nil {
		phase := model.Phase(*input.Phase)
		upd.Phase = &phase
	}

	sess, err := uc.sessions.ApplyUpdate(sc.SessionID, upd)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %v", LogPrefixUpdateSession, err)
		return model.Session{}, err
	}

	uc.broadcaster.ToSession(ctx, sc.SessionID, orchestrator.SessionUpdateMessage{
		Type:    orchestrator.TypeSessionUpdate,
		Session: orchestrator.NewSessionView(sess),
	})
	return sess, nil
}

func (uc *implUseCase) UploadDocument(ctx context.Context, sc model.Scope, input orchestrator.DocumentInput) (model.Document, error) {
	sc, err := uc.bind(sc)
	if err != nil {
		return model.Document{}, err
	}
	if strings.TrimSpace(input.Filename) == "" {
		return model.Document{}, orchestrator.ErrMissingFilename
	}

	summary := strings.TrimSpace(input.Summary)
	if summary == "" {
		summary = summarize(input.Content, MaxSummaryRunes)
	}
	fileSize := input.FileSize
	if fileSize <= 0 {
		fileSize = int64(len(input.Content))
	}

	doc := model.Document{
		Filename:   input.Filename,
		FileType:   input.FileType,
		FileSize:   fileSize,
		Summary:    summary,
		UploadedBy: sc.UserID,
		UploadedAt: uc.now(),
	}
	if _, err := uc.sessions.AttachDocument(sc.SessionID, doc); err != nil {
		return model.Document{}, err
	}
	uc.l.Infof(ctx, "%s: %s (%d bytes)", LogPrefixUploadDocument, doc.Filename, doc.FileSize)

	uc.broadcaster.ToSession(ctx, sc.SessionID, orchestrator.DocumentProcessedMessage{
		Type:         orchestrator.TypeDocumentProcessed,
		DocumentInfo: doc,
	})
	return doc, nil
}

func (uc *implUseCase) ReportStatus(ctx context.Context, sc model.Scope) error {
	sc, err := uc.bind(sc)
	if err != nil {
		return err
	}
	st := uc.scheduler.Status(sc.SessionID)
	return uc.broadcaster.ToConnection(ctx, sc.ConnectionID, orchestrator.AgentStatusBatchMessage{
		Type:         orchestrator.TypeAgentStatus,
		ActiveAgents: st.ActiveAgents,
		QueueLength:  st.QueueLength,
	})
}

func (uc *implUseCase) Session(sessionID string) (model.Session, bool) {
	return uc.sessions.Get(sessionID)
}

func (uc *implUseCase) SchedulerStatus(sessionID string) scheduler.Status {
	return uc.scheduler.Status(sessionID)
}

func (uc *implUseCase) ConnectionCount() int {
	return uc.conns.Count()
}

// summarize collapses whitespace and cuts text to at most limit runes.
func summarize(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:limit])) + "..."
}
