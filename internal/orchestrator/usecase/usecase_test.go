package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/idreesmuhammadqazi-create/MUN/internal/connection"
	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator"
	"github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator/usecase"
	"github.com/idreesmuhammadqazi-create/MUN/internal/router"
	"github.com/idreesmuhammadqazi-create/MUN/internal/scheduler"
	"github.com/idreesmuhammadqazi-create/MUN/internal/session"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type sent struct {
	target  string
	payload any
}

type mockBroadcaster struct {
	mu        sync.Mutex
	toSession []sent
	toConn    []sent
}

func (m *mockBroadcaster) ToSession(ctx context.Context, sessionID string, payload any) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toSession = append(m.toSession, sent{target: sessionID, payload: payload})
	return 1
}

func (m *mockBroadcaster) ToConnection(ctx context.Context, connID string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toConn = append(m.toConn, sent{target: connID, payload: payload})
	return nil
}

type mockScheduler struct {
	fail   bool
	queued []model.Task
	status scheduler.Status
}

func (m *mockScheduler) Enqueue(ctx context.Context, tasks ...model.Task) ([]model.Task, error) {
	if m.fail {
		return nil, scheduler.ErrUnknownSpecialist
	}
	m.queued = append(m.queued, tasks...)
	return tasks, nil
}

func (m *mockScheduler) Status(sessionID string) scheduler.Status {
	return m.status
}

type failingRouter struct{}

func (failingRouter) Classify(message string, sess model.Session) (router.TaskPlan, error) {
	return router.TaskPlan{}, errors.New("classifier exploded")
}

type nopTransport struct{}

func (nopTransport) Send(payload []byte) error { return nil }
func (nopTransport) Deliverable() bool         { return true }
func (nopTransport) Close() error              { return nil }

type fixture struct {
	uc       orchestrator.UseCase
	conns    connection.Registry
	sessions session.Store
	bc       *mockBroadcaster
	sched    *mockScheduler
}

func newFixture(rt router.Router) fixture {
	l := &mockLogger{}
	f := fixture{
		conns:    connection.New(l, connection.Config{}),
		sessions: session.New(10),
		bc:       &mockBroadcaster{},
		sched:    &mockScheduler{},
	}
	if rt == nil {
		rt = router.New()
	}
	f.uc = usecase.New(l, f.conns, f.sessions, rt, f.sched, f.bc, 5)
	return f
}

func (f fixture) join(t *testing.T, userID, sessionID string) model.Scope {
	t.Helper()
	connID := f.uc.Connect(context.Background(), nopTransport{})
	if _, err := f.uc.Authenticate(context.Background(), connID, orchestrator.AuthInput{UserID: userID, SessionID: sessionID}); err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	return model.Scope{ConnectionID: connID, UserID: userID}
}

func TestConnectAndAuthenticate(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	connID := f.uc.Connect(ctx, nopTransport{})
	if connID == "" {
		t.Fatal("expected connection id")
	}
	if len(f.bc.toConn) != 1 {
		t.Fatalf("expected 1 unicast, got %d", len(f.bc.toConn))
	}
	sys, ok := f.bc.toConn[0].payload.(orchestrator.SystemMessage)
	if !ok || sys.ClientID != connID || sys.Type != orchestrator.TypeSystem {
		t.Fatalf("unexpected greeting: %#v", f.bc.toConn[0].payload)
	}

	if _, err := f.uc.Authenticate(ctx, connID, orchestrator.AuthInput{SessionID: "s1"}); !errors.Is(err, orchestrator.ErrMissingUserID) {
		t.Errorf("expected ErrMissingUserID, got %v", err)
	}
	if _, err := f.uc.Authenticate(ctx, connID, orchestrator.AuthInput{UserID: "u1"}); !errors.Is(err, orchestrator.ErrMissingSessionID) {
		t.Errorf("expected ErrMissingSessionID, got %v", err)
	}

	sess, err := f.uc.Authenticate(ctx, connID, orchestrator.AuthInput{UserID: "u1", SessionID: "s1"})
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if sess.CurrentPhase != model.PhaseLobby {
		t.Errorf("expected lobby phase, got %s", sess.CurrentPhase)
	}
	if got := f.conns.ConnectionsForSession("s1"); len(got) != 1 || got[0] != connID {
		t.Errorf("expected connection bound to s1, got %v", got)
	}

	if len(f.bc.toConn) != 3 {
		t.Fatalf("expected greeting, auth_success and session_update, got %d messages", len(f.bc.toConn))
	}
	if _, ok := f.bc.toConn[1].payload.(orchestrator.AuthSuccessMessage); !ok {
		t.Errorf("expected auth_success, got %#v", f.bc.toConn[1].payload)
	}
	upd, ok := f.bc.toConn[2].payload.(orchestrator.SessionUpdateMessage)
	if !ok || upd.Session.ID != "s1" {
		t.Errorf("expected session_update for s1, got %#v", f.bc.toConn[2].payload)
	}

	_, err = f.uc.Authenticate(ctx, connID, orchestrator.AuthInput{UserID: "u1", SessionID: "s2"})
	if !errors.Is(err, connection.ErrAlreadyBound) {
		t.Errorf("expected ErrAlreadyBound, got %v", err)
	}
}

func TestHandleChat_LinearChain(t *testing.T) {
	f := newFixture(nil)
	sc := f.join(t, "u1", "s1")
	f.bc.toSession = nil

	out, err := f.uc.HandleChat(context.Background(), sc, orchestrator.ChatInput{
		Content:  "Research the history of this topic and draft a resolution",
		Metadata: map[string]any{"isVoice": false},
	})
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}

	if len(f.sched.queued) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(f.sched.queued))
	}
	first, second := f.sched.queued[0], f.sched.queued[1]
	if first.AgentType != model.AgentResearch || second.AgentType != model.AgentWriting {
		t.Errorf("expected research then writing, got %s then %s", first.AgentType, second.AgentType)
	}
	if len(first.DependsOn) != 0 {
		t.Errorf("first task should have no dependencies, got %v", first.DependsOn)
	}
	if len(second.DependsOn) != 1 || second.DependsOn[0] != first.ID {
		t.Errorf("second task should depend on %s, got %v", first.ID, second.DependsOn)
	}
	if first.Context.SessionID != "s1" || first.Context.UserID != "u1" {
		t.Errorf("unexpected task context: %+v", first.Context)
	}
	if len(first.Context.RecentMessages) != 1 {
		t.Errorf("expected the user message in context, got %d messages", len(first.Context.RecentMessages))
	}
	if len(out.Tasks) != 2 || out.Message.Role != model.RoleUser {
		t.Errorf("unexpected output: %+v", out)
	}

	if len(f.bc.toSession) != 1 {
		t.Fatalf("expected one broadcast, got %d", len(f.bc.toSession))
	}
	msg, ok := f.bc.toSession[0].payload.(orchestrator.ChatMessage)
	if !ok || msg.Type != orchestrator.TypeMessage || msg.Content == "" {
		t.Errorf("expected message broadcast, got %#v", f.bc.toSession[0].payload)
	}

	sess, _ := f.uc.Session("s1")
	if len(sess.Messages) != 1 {
		t.Errorf("expected 1 stored message, got %d", len(sess.Messages))
	}
}

func TestHandleChat_ClassifierFailure(t *testing.T) {
	f := newFixture(failingRouter{})
	sc := f.join(t, "u1", "s1")

	_, err := f.uc.HandleChat(context.Background(), sc, orchestrator.ChatInput{Content: "hello"})
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}
	if len(f.sched.queued) != 0 {
		t.Errorf("expected no tasks, got %d", len(f.sched.queued))
	}

	var responses int
	for _, s := range f.bc.toSession {
		if resp, ok := s.payload.(orchestrator.AgentResponseMessage); ok {
			if !resp.IsError || resp.AgentType != model.AgentSystem {
				t.Errorf("unexpected response: %+v", resp)
			}
			responses++
		}
	}
	if responses != 1 {
		t.Errorf("expected exactly one system error response, got %d", responses)
	}
}

func TestHandleChat_EnqueueFailure(t *testing.T) {
	f := newFixture(nil)
	f.sched.fail = true
	sc := f.join(t, "u1", "s1")

	_, err := f.uc.HandleChat(context.Background(), sc, orchestrator.ChatInput{Content: "what is our stance?"})
	if !errors.Is(err, scheduler.ErrUnknownSpecialist) {
		t.Fatalf("expected ErrUnknownSpecialist, got %v", err)
	}
	last := f.bc.toSession[len(f.bc.toSession)-1].payload.(orchestrator.AgentResponseMessage)
	if !last.IsError {
		t.Errorf("expected error response, got %+v", last)
	}
}

func TestHandleChat_Validation(t *testing.T) {
	f := newFixture(nil)

	if _, err := f.uc.HandleChat(context.Background(), model.Scope{ConnectionID: "c"}, orchestrator.ChatInput{Content: "hi"}); !errors.Is(err, orchestrator.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
	sc := f.join(t, "u1", "s1")
	if _, err := f.uc.HandleChat(context.Background(), sc, orchestrator.ChatInput{Content: "   "}); !errors.Is(err, orchestrator.ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
}

func TestOperations_SessionComesFromRegistry(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	sc := f.join(t, "u1", "s1")

	forged := sc
	forged.SessionID = "s2"
	if _, err := f.uc.HandleChat(ctx, forged, orchestrator.ChatInput{Content: "What is the quorum?"}); err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}
	if sess, _ := f.uc.Session("s1"); len(sess.Messages) != 1 {
		t.Errorf("expected the message in the bound session, got %d", len(sess.Messages))
	}
	if _, ok := f.uc.Session("s2"); ok {
		t.Error("a scope's own session id must not create or reach another session")
	}
	if got := f.sched.queued[0].Context.SessionID; got != "s1" {
		t.Errorf("expected tasks for s1, got %s", got)
	}

	unbound := model.Scope{ConnectionID: f.uc.Connect(ctx, nopTransport{}), SessionID: "s1"}
	phase := "crisis"
	checks := map[string]error{}
	_, checks["HandleChat"] = f.uc.HandleChat(ctx, unbound, orchestrator.ChatInput{Content: "hi"})
	_, checks["UpdateSession"] = f.uc.UpdateSession(ctx, unbound, orchestrator.SessionUpdateInput{Phase: &phase})
	_, checks["UploadDocument"] = f.uc.UploadDocument(ctx, unbound, orchestrator.DocumentInput{Filename: "a.txt"})
	checks["ReportStatus"] = f.uc.ReportStatus(ctx, unbound)
	for op, err := range checks {
		if !errors.Is(err, orchestrator.ErrNotAuthenticated) {
			t.Errorf("%s: expected ErrNotAuthenticated for an unbound connection, got %v", op, err)
		}
	}

	f.uc.Disconnect(ctx, sc.ConnectionID)
	if err := f.uc.ReportStatus(ctx, sc); !errors.Is(err, orchestrator.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated after disconnect, got %v", err)
	}
}

func TestHandleChat_TaskContextsAreIndependent(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	sc := f.join(t, "u1", "s1")
	if _, err := f.uc.UpdateSession(ctx, sc, orchestrator.SessionUpdateInput{
		PhaseData: map[string]any{"speakers": []any{"Kenya"}},
	}); err != nil {
		t.Fatalf("UpdateSession() error = %v", err)
	}

	_, err := f.uc.HandleChat(ctx, sc, orchestrator.ChatInput{
		Content:  "Research the history of this topic and draft a resolution",
		Metadata: map[string]any{"source": "mic"},
	})
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}
	if len(f.sched.queued) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(f.sched.queued))
	}
	first, second := f.sched.queued[0].Context, f.sched.queued[1].Context

	first.Metadata["source"] = "keyboard"
	first.PhaseData["speakers"].([]any)[0] = "Brazil"
	first.RecentMessages[0].Content = "rewritten"

	if second.Metadata["source"] != "mic" {
		t.Errorf("metadata leaked between tasks: %v", second.Metadata)
	}
	if second.PhaseData["speakers"].([]any)[0] != "Kenya" {
		t.Errorf("phase data leaked between tasks: %v", second.PhaseData)
	}
	if second.RecentMessages[0].Content == "rewritten" {
		t.Error("recent messages leaked between tasks")
	}
	sess, _ := f.uc.Session("s1")
	if sess.PhaseData["speakers"].([]any)[0] != "Kenya" {
		t.Errorf("task context mutation reached the session: %v", sess.PhaseData)
	}
}

func TestUpdateSession(t *testing.T) {
	f := newFixture(nil)
	sc := f.join(t, "u1", "s1")
	f.bc.toSession = nil

	phase := "moderated_caucus"
	country := "Kenya"
	sess, err := f.uc.UpdateSession(context.Background(), sc, orchestrator.SessionUpdateInput{
		Phase:     &phase,
		Country:   &country,
		PhaseData: map[string]any{"speakingTime": 60},
	})
	if err != nil {
		t.Fatalf("UpdateSession() error = %v", err)
	}
	if sess.CurrentPhase != model.PhaseModeratedCaucus || sess.Representation.Country != "Kenya" {
		t.Errorf("unexpected session: %+v", sess)
	}
	upd, ok := f.bc.toSession[0].payload.(orchestrator.SessionUpdateMessage)
	if !ok || upd.Session.Country != "Kenya" || upd.Session.PhaseData["speakingTime"] != 60 {
		t.Errorf("unexpected broadcast: %#v", f.bc.toSession[0].payload)
	}

	bad := "recess"
	if _, err := f.uc.UpdateSession(context.Background(), sc, orchestrator.SessionUpdateInput{Phase: &bad}); !errors.Is(err, session.ErrInvalidPhase) {
		t.Errorf("expected ErrInvalidPhase, got %v", err)
	}
}

func TestUploadDocument(t *testing.T) {
	f := newFixture(nil)
	sc := f.join(t, "u1", "s1")

	if _, err := f.uc.UploadDocument(context.Background(), sc, orchestrator.DocumentInput{}); !errors.Is(err, orchestrator.ErrMissingFilename) {
		t.Errorf("expected ErrMissingFilename, got %v", err)
	}

	content := strings.Repeat("word ", 200)
	doc, err := f.uc.UploadDocument(context.Background(), sc, orchestrator.DocumentInput{
		Filename: "brief.pdf",
		FileType: "application/pdf",
		Content:  content,
	})
	if err != nil {
		t.Fatalf("UploadDocument() error = %v", err)
	}
	if doc.FileSize != int64(len(content)) {
		t.Errorf("expected size %d, got %d", len(content), doc.FileSize)
	}
	if !strings.HasSuffix(doc.Summary, "...") || len([]rune(doc.Summary)) > usecase.MaxSummaryRunes+3 {
		t.Errorf("unexpected summary %q", doc.Summary)
	}
	if doc.UploadedBy != "u1" {
		t.Errorf("expected uploader u1, got %q", doc.UploadedBy)
	}

	sess, _ := f.uc.Session("s1")
	if len(sess.AgentContext.Documents) != 1 {
		t.Fatalf("expected 1 document, got %d", len(sess.AgentContext.Documents))
	}
	last := f.bc.toSession[len(f.bc.toSession)-1].payload
	if _, ok := last.(orchestrator.DocumentProcessedMessage); !ok {
		t.Errorf("expected document_processed, got %#v", last)
	}
}

func TestReportStatus(t *testing.T) {
	f := newFixture(nil)
	f.sched.status = scheduler.Status{
		ActiveAgents: []scheduler.ActiveTask{{TaskID: "t1", AgentType: model.AgentResearch, Status: model.TaskInProgress}},
		QueueLength:  2,
	}
	sc := f.join(t, "u1", "s1")
	f.bc.toConn = nil

	if err := f.uc.ReportStatus(context.Background(), sc); err != nil {
		t.Fatalf("ReportStatus() error = %v", err)
	}
	if len(f.bc.toConn) != 1 || f.bc.toConn[0].target != sc.ConnectionID {
		t.Fatalf("expected one unicast to %s, got %+v", sc.ConnectionID, f.bc.toConn)
	}
	batch := f.bc.toConn[0].payload.(orchestrator.AgentStatusBatchMessage)
	if batch.QueueLength != 2 || len(batch.ActiveAgents) != 1 {
		t.Errorf("unexpected batch: %+v", batch)
	}
	if f.uc.ConnectionCount() != 1 {
		t.Errorf("expected 1 connection, got %d", f.uc.ConnectionCount())
	}
}
