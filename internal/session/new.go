package session

import (
	"sync"
	"time"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
)

type entry struct {
	mu      sync.Mutex
	session model.Session
}

type store struct {
	historyCap int
	now        func() time.Time

	mu       sync.RWMutex
	sessions map[string]*entry
}

var _ Store = (*store)(nil)

// New creates an in-memory session store keeping at most historyCap messages per session.
func New(historyCap int) *store {
	if historyCap <= 0 {
		historyCap = DefaultHistoryCap
	}
	return &store{
		historyCap: historyCap,
		now:        time.Now,
		sessions:   make(map[string]*entry),
	}
}
