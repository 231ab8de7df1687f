package usecase

import (
	"context"
	"fmt"

	"github.com/idreesmuhammadqazi-create/MUN/internal/connection"
	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator"
	pkgLog "github.com/idreesmuhammadqazi-create/MUN/pkg/log"
)

func (uc *implUseCase) Connect(ctx context.Context, t connection.Transport) string {
	connID := uc.conns.Register(t)
	_ = uc.broadcaster.ToConnection(pkgLog.WithConnection(ctx, connID), connID, orchestrator.SystemMessage{
		Type:     orchestrator.TypeSystem,
		Message:  WelcomeMessage,
		ClientID: connID,
	})
	return connID
}

func (uc *implUseCase) Disconnect(ctx context.Context, connID string) {
	uc.conns.Unregister(connID)
}

func (uc *implUseCase) Touch(connID string) {
	uc.conns.Touch(connID)
}

func (uc *implUseCase) Authenticate(ctx context.Context, connID string, input orchestrator.AuthInput) (model.Session, error) {
	if input.UserID == "" {
		return model.Session{}, orchestrator.ErrMissingUserID
	}
	if input.SessionID == "" {
		return model.Session{}, orchestrator.ErrMissingSessionID
	}

	sess, err := uc.sessions.GetOrCreate(input.SessionID)
	if err != nil {
		return model.Session{}, err
	}
	if err := uc.conns.BindSession(connID, input.SessionID); err != nil {
		uc.l.Warnf(ctx, "%s: bind %s to %s: %v", LogPrefixAuthenticate, connID, input.SessionID, err)
		return model.Session{}, fmt.Errorf("bind session: %w", err)
	}

	ctx = pkgLog.WithSession(ctx, input.SessionID)
	uc.l.Infof(ctx, "%s: user %s joined", LogPrefixAuthenticate, input.UserID)

	_ = uc.broadcaster.ToConnection(ctx, connID, orchestrator.AuthSuccessMessage{
		Type:      orchestrator.TypeAuthSuccess,
		ClientID:  connID,
		UserID:    input.UserID,
		SessionID: input.SessionID,
	})
	_ = uc.broadcaster.ToConnection(ctx, connID, orchestrator.SessionUpdateMessage{
		Type:    orchestrator.TypeSessionUpdate,
		Session: orchestrator.NewSessionView(sess),
	})
	return sess, nil
}

func (uc *implUseCase) NotifyError(ctx context.Context, connID string, message string) {
	_ = uc.broadcaster.ToConnection(ctx, connID, orchestrator.ErrorMessage{
		Type:    orchestrator.TypeError,
		Message: message,
	})
}

// bind fills sc.SessionID from the connection registry, the only record of
// which session a connection joined.
func (uc *implUseCase) bind(sc model.Scope) (model.Scope, error) {
	sessionID, ok := uc.conns.SessionOf(sc.ConnectionID)
	if !ok {
		return model.Scope{}, orchestrator.ErrNotAuthenticated
	}
	sc.SessionID = sessionID
	return sc, nil
}
