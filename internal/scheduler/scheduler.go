package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
)

// Enqueue validates and queues tasks, then requests a scheduling pass.
// Either every task is queued or none is. The returned copies carry the
// assigned ids and timestamps.
func (s *Scheduler) Enqueue(ctx context.Context, tasks ...model.Task) ([]model.Task, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	for _, t := range tasks {
		if t.Context.SessionID == "" {
			return nil, ErrMissingSession
		}
		if !t.Priority.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
		}
		if _, ok := s.specialists.Get(t.AgentType); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSpecialist, t.AgentType)
		}
	}

	now := s.now()
	out := make([]model.Task, 0, len(tasks))

	s.mu.Lock()
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if t.ID == "" {
			continue
		}
		_, inBatch := seen[t.ID]
		_, isPending := s.pending[t.ID]
		_, isActive := s.active[t.ID]
		if inBatch || isPending || isActive {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTask, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	for _, t := range tasks {
		task := t
		if task.ID == "" {
			task.ID = uuid.NewString()
		}
		if task.CreatedAt.IsZero() {
			task.CreatedAt = now
		}
		task.Status = model.TaskPending
		task.UpdatedAt = task.CreatedAt
		task.Result = nil
		task.Error = ""
		task.DependsOn = append([]string(nil), t.DependsOn...)
		task.Context = t.Context.Clone()
		task.Context.Upstream = nil

		s.insertLocked(&task)
		out = append(out, cloneTask(&task))
	}
	queued := len(s.queue)
	s.mu.Unlock()

	s.l.Debugf(ctx, "%s: queued %d task(s), queue length %d", LogPrefixEnqueue, len(out), queued)
	s.Trigger()
	return out, nil
}

// Trigger requests a scheduling pass without blocking. Requests made while
// one is already pending collapse into it.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Run drives scheduling passes until ctx is done, then waits for in-flight
// executions to finish. A ticker runs passes even when no trigger arrives.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	s.running.Store(true)
	defer s.running.Store(false)

	s.schedulePass(ctx)
	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			return nil
		case <-s.trigger:
			s.schedulePass(ctx)
		case <-ticker.C:
			s.schedulePass(ctx)
		}
	}
}

// Running reports whether the dispatch loop is active.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// schedulePass starts every eligible task up to the concurrency cap and
// returns how many were started. A pass requested while another is running
// returns 0 immediately.
func (s *Scheduler) schedulePass(ctx context.Context) int {
	if !s.passing.CompareAndSwap(false, true) {
		return 0
	}
	defer s.passing.Store(false)

	s.mu.Lock()
	started, cascaded := s.dequeueLocked()
	s.mu.Unlock()

	for _, t := range cascaded {
		s.l.Warnf(ctx, "%s: task %s failed: %s", LogPrefixPass, t.ID, t.Error)
		s.notifier.TaskFailed(ctx, t)
	}
	if len(cascaded) > 0 {
		// Dependents of the tasks just failed may now be decidable.
		s.Trigger()
	}
	for _, t := range started {
		s.notifier.TaskStarted(ctx, t)
		s.wg.Add(1)
		go s.execute(ctx, t)
	}
	return len(started)
}
