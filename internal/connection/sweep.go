package connection

import (
	"context"
	"time"
)

// Run evicts idle connections every sweep interval until ctx is done.
func (r *registry) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.SweepInterval)
	defer ticker.Stop()

	r.sweeping.Store(true)
	defer r.sweeping.Store(false)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if evicted := r.sweepIdle(ctx); len(evicted) > 0 {
				r.l.Infof(ctx, "%s: evicted %d idle connection(s)", LogPrefixSweep, len(evicted))
			}
		}
	}
}

// Running reports whether the idle sweeper is active.
func (r *registry) Running() bool {
	return r.sweeping.Load()
}

// sweepIdle unregisters and closes every connection idle past the threshold.
func (r *registry) sweepIdle(ctx context.Context) []string {
	cutoff := r.now().Add(-r.cfg.IdleTimeout)

	r.mu.Lock()
	var stale []*entry
	for id, e := range r.conns {
		if e.lastActivity.Before(cutoff) {
			stale = append(stale, r.removeLocked(id))
		}
	}
	r.mu.Unlock()

	ids := make([]string, 0, len(stale))
	for _, e := range stale {
		ids = append(ids, e.id)
		if e.transport == nil {
			continue
		}
		if err := e.transport.Close(); err != nil {
			r.l.Warnf(ctx, "%s: close %s: %v", LogPrefixSweep, e.id, err)
		}
	}
	return ids
}
