package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	pkgLog "github.com/idreesmuhammadqazi-create/MUN/pkg/log"
)

// Scheduler holds pending and in-flight tasks and dispatches them to specialists.
type Scheduler struct {
	l           pkgLog.Logger
	specialists Resolver
	notifier    Notifier
	cfg         Config
	now         func() time.Time

	mu       sync.Mutex
	queue    []queuedTask
	pending  map[string]*model.Task
	active   map[string]*model.Task
	terminal *expirable.LRU[string, terminalOutcome]
	seq      uint64

	trigger chan struct{}
	passing atomic.Bool
	running atomic.Bool
	wg      sync.WaitGroup
}

// New creates a Scheduler. Zero config values take the defaults.
func New(l pkgLog.Logger, specialists Resolver, notifier Notifier, cfg Config) (*Scheduler, error) {
	if cfg.MaxConcurrent < 0 {
		return nil, ErrInvalidConcurrency
	}
	if cfg.MaxConcurrent == 0 {
		cfg.MaxConcurrent = DefaultMaxConcurrent
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.TaskTimeout <= 0 {
		cfg.TaskTimeout = DefaultTaskTimeout
	}
	if cfg.TerminalTTL <= 0 {
		cfg.TerminalTTL = DefaultTerminalTTL
	}
	if cfg.TerminalCapacity <= 0 {
		cfg.TerminalCapacity = DefaultTerminalCapacity
	}
	switch cfg.DependencyPolicy {
	case "":
		cfg.DependencyPolicy = PolicyFailOpen
	case PolicyFailOpen, PolicyCascade:
	default:
		return nil, ErrInvalidDepPolicy
	}

	return &Scheduler{
		l:           l,
		specialists: specialists,
		notifier:    notifier,
		cfg:         cfg,
		now:         time.Now,
		pending:     make(map[string]*model.Task),
		active:      make(map[string]*model.Task),
		terminal:    expirable.NewLRU[string, terminalOutcome](cfg.TerminalCapacity, nil, cfg.TerminalTTL),
		trigger:     make(chan struct{}, 1),
	}, nil
}
