package websocket

import (
	"context"

	"github.com/gin-gonic/gin"
	gws "github.com/gorilla/websocket"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator"
	pkgLog "github.com/idreesmuhammadqazi-create/MUN/pkg/log"
)

// Log prefixes
const (
	LogPrefixServe    = "internal.orchestrator.delivery.websocket.Serve"
	LogPrefixDispatch = "internal.orchestrator.delivery.websocket.dispatch"
)

// connState is what the read loop knows about its own connection. The
// session binding lives in the connection registry.
type connState struct {
	connID string
	userID string
}

func (s *connState) scope() model.Scope {
	return model.Scope{
		ConnectionID: s.connID,
		UserID:       s.userID,
	}
}

// Serve upgrades the request and runs the connection's read loop until the
// socket closes.
// @Summary Open a session websocket
// @Description Upgrades to a websocket carrying JSON envelopes of the form {"type": ..., ...fields}.
// @Tags Realtime
// @Success 101 "Switching Protocols"
// @Router /ws [get]
func (h *handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "%s: upgrade: %v", LogPrefixServe, err)
		return
	}
	conn.SetReadLimit(h.cfg.ReadLimitBytes)

	t := newTransport(conn, h.cfg.SendBuffer, h.cfg.WriteTimeout)
	go t.writePump()

	ctx := context.WithoutCancel(c.Request.Context())
	state := &connState{}
	state.connID = h.uc.Connect(ctx, t)
	ctx = pkgLog.WithConnection(ctx, state.connID)
	h.l.Debugf(ctx, "%s: connected from %s", LogPrefixServe, c.ClientIP())

	defer func() {
		h.uc.Disconnect(ctx, state.connID)
		h.limiter.Forget(state.connID)
		_ = t.Close()
		h.l.Debugf(ctx, "%s: disconnected", LogPrefixServe)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if gws.IsUnexpectedCloseError(err, gws.CloseNormalClosure, gws.CloseGoingAway, gws.CloseNoStatusReceived) {
				h.l.Warnf(ctx, "%s: read: %v", LogPrefixServe, err)
			}
			return
		}
		h.uc.Touch(state.connID)

		if err := h.limiter.Allow(state.connID); err != nil {
			h.uc.NotifyError(ctx, state.connID, err.Error())
			continue
		}

		msg, err := decode(data)
		if err != nil {
			h.l.Warnf(ctx, "%s: %v", LogPrefixDispatch, err)
			h.uc.NotifyError(ctx, state.connID, "invalid message: "+err.Error())
			continue
		}
		ctx = h.dispatch(ctx, state, msg)
	}
}

// dispatch handles one decoded message and returns the context to use for
// the rest of the connection.
func (h *handler) dispatch(ctx context.Context, state *connState, msg clientMessage) context.Context {
	var err error
	switch m := msg.(type) {
	case authRequest:
		if _, err = h.uc.Authenticate(ctx, state.connID, orchestrator.AuthInput{UserID: m.UserID, SessionID: m.SessionID}); err == nil {
			state.userID = m.UserID
			ctx = pkgLog.WithSession(ctx, m.SessionID)
		}
	case chatRequest:
		_, err = h.uc.HandleChat(ctx, state.scope(), orchestrator.ChatInput{
			Content:  m.Content,
			Metadata: m.Metadata,
		})
	case voiceTranscriptRequest:
		_, err = h.uc.HandleChat(ctx, state.scope(), orchestrator.ChatInput{
			Content: m.Transcript,
			Metadata: map[string]any{
				"isVoice":    true,
				"confidence": m.Confidence,
				"duration":   m.Duration,
			},
		})
	case sessionUpdateRequest:
		_, err = h.uc.UpdateSession(ctx, state.scope(), orchestrator.SessionUpdateInput{
			Phase:     m.Phase,
			PhaseData: m.PhaseData,
			Country:   m.Country,
			Council:   m.Council,
			Committee: m.Committee,
			Topic:     m.Topic,
		})
	case documentUploadRequest:
		_, err = h.uc.UploadDocument(ctx, state.scope(), orchestrator.DocumentInput{
			Filename: m.DocumentInfo.Filename,
			FileType: m.DocumentInfo.FileType,
			FileSize: m.DocumentInfo.FileSize,
			Content:  m.DocumentInfo.Content,
			Summary:  m.DocumentInfo.Summary,
		})
	case agentStatusRequest:
		err = h.uc.ReportStatus(ctx, state.scope())
	case unknownRequest:
		h.l.Infof(ctx, "%s: ignoring unknown message type %q", LogPrefixDispatch, m.Type)
	}

	if err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixDispatch, err)
		h.uc.NotifyError(ctx, state.connID, err.Error())
	}
	return ctx
}
