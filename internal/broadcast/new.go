package broadcast

import (
	pkgLog "github.com/idreesmuhammadqazi-create/MUN/pkg/log"
)

// Log prefixes
const (
	LogPrefixToSession    = "internal.broadcast.ToSession"
	LogPrefixToConnection = "internal.broadcast.ToConnection"
)

type dispatcher struct {
	l     pkgLog.Logger
	conns Connections
}

// New creates a Broadcaster over the given connections.
func New(l pkgLog.Logger, conns Connections) Broadcaster {
	return &dispatcher{
		l:     l,
		conns: conns,
	}
}
