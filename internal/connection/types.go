package connection

import "time"

// Config controls idle eviction.
type Config struct {
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

const (
	DefaultIdleTimeout   = 5 * time.Minute
	DefaultSweepInterval = 60 * time.Second
)

// Log prefixes
const (
	LogPrefixSweep = "internal.connection.sweepIdle"
)

type entry struct {
	id           string
	transport    Transport
	sessionID    string
	lastActivity time.Time
}
