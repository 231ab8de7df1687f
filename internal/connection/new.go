package connection

import (
	"sync"
	"sync/atomic"
	"time"

	pkgLog "github.com/idreesmuhammadqazi-create/MUN/pkg/log"
)

type registry struct {
	l   pkgLog.Logger
	cfg Config
	now func() time.Time

	mu        sync.RWMutex
	conns     map[string]*entry
	bySession map[string]map[string]struct{}

	sweeping atomic.Bool
}

var _ Registry = (*registry)(nil)

// New creates a connection registry. Zero config values take the defaults.
func New(l pkgLog.Logger, cfg Config) *registry {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	return &registry{
		l:         l,
		cfg:       cfg,
		now:       time.Now,
		conns:     make(map[string]*entry),
		bySession: make(map[string]map[string]struct{}),
	}
}
