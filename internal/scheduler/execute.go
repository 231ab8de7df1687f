package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	pkgLog "github.com/idreesmuhammadqazi-create/MUN/pkg/log"
)

type outcome struct {
	res model.Result
	err error
}

func (s *Scheduler) execute(ctx context.Context, t model.Task) {
	defer s.wg.Done()
	defer s.Trigger()

	ctx = pkgLog.WithSession(ctx, t.SessionID())
	runCtx, cancel := context.WithTimeout(ctx, s.cfg.TaskTimeout)
	defer cancel()

	s.l.Debugf(ctx, "%s: task %s (%s) started", LogPrefixExecute, t.ID, t.AgentType)
	res, err := s.invoke(runCtx, t)
	s.finish(ctx, t.ID, res, err)
}

// invoke runs the specialist in its own goroutine so a deadline frees the
// slot even when the specialist ignores cancellation.
func (s *Scheduler) invoke(ctx context.Context, t model.Task) (model.Result, error) {
	sp, ok := s.specialists.Get(t.AgentType)
	if !ok {
		return model.Result{}, fmt.Errorf("%w: %s", ErrUnknownSpecialist, t.AgentType)
	}

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("%w: %v", ErrSpecialistPanic, r)}
			}
		}()
		res, err := sp.Handle(ctx, t.Query, t.Context)
		done <- outcome{res: res, err: err}
	}()

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return model.Result{}, fmt.Errorf("%w after %s", ErrTaskTimeout, s.cfg.TaskTimeout)
		}
		return model.Result{}, ctx.Err()
	}
}

// finish moves an active task to its terminal state exactly once.
func (s *Scheduler) finish(ctx context.Context, id string, res model.Result, err error) {
	s.mu.Lock()
	t, ok := s.active[id]
	if !ok || t.Status.IsTerminal() {
		s.mu.Unlock()
		return
	}
	delete(s.active, id)

	t.UpdatedAt = s.now()
	if err != nil {
		t.Status = model.TaskFailed
		t.Error = err.Error()
	} else {
		t.Status = model.TaskCompleted
		r := res
		t.Result = &r
	}
	rec := terminalOutcome{status: t.Status, agentType: t.AgentType}
	if t.Result != nil {
		r := *t.Result
		rec.result = &r
	}
	s.terminal.Add(id, rec)
	snapshot := cloneTask(t)
	s.mu.Unlock()

	if err != nil {
		s.l.Warnf(ctx, "%s: task %s (%s) failed: %v", LogPrefixExecute, id, snapshot.AgentType, err)
		s.notifier.TaskFailed(ctx, snapshot)
		return
	}
	s.l.Infof(ctx, "%s: task %s (%s) completed", LogPrefixExecute, id, snapshot.AgentType)
	s.notifier.TaskCompleted(ctx, snapshot)
}
