package log

import "context"

type ctxKey int

const (
	connectionKey ctxKey = iota
	sessionKey
)

// WithConnection tags ctx so log lines carry the connection id.
func WithConnection(ctx context.Context, connID string) context.Context {
	return context.WithValue(ctx, connectionKey, connID)
}

// WithSession tags ctx so log lines carry the session id.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey, sessionID)
}

func fieldsFromContext(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	var fields []any
	if v, ok := ctx.Value(connectionKey).(string); ok && v != "" {
		fields = append(fields, "connection_id", v)
	}
	if v, ok := ctx.Value(sessionKey).(string); ok && v != "" {
		fields = append(fields, "session_id", v)
	}
	return fields
}
