package scheduler

import (
	"sort"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
)

// insertLocked adds a pending task and re-sorts the queue.
func (s *Scheduler) insertLocked(t *model.Task) {
	s.seq++
	s.queue = append(s.queue, queuedTask{task: t, seq: s.seq})
	s.pending[t.ID] = t
	sort.SliceStable(s.queue, func(i, j int) bool {
		return queueLess(s.queue[i], s.queue[j])
	})
}

// queueLess orders by priority rank descending, then creation time, then
// insertion sequence.
func queueLess(a, b queuedTask) bool {
	ra, rb := a.task.Priority.Rank(), b.task.Priority.Rank()
	if ra != rb {
		return ra > rb
	}
	if !a.task.CreatedAt.Equal(b.task.CreatedAt) {
		return a.task.CreatedAt.Before(b.task.CreatedAt)
	}
	return a.seq < b.seq
}

// dependencyStateLocked reports whether every dependency of t has resolved.
// A dependency is unresolved while it is still queued or running. Unknown ids
// are treated as finished and evicted. Under PolicyCascade a remembered
// failure returns depFailed along with the failed id.
func (s *Scheduler) dependencyStateLocked(t *model.Task) (depState, string) {
	for _, depID := range t.DependsOn {
		if _, ok := s.pending[depID]; ok {
			return depBlocked, ""
		}
		if dep, ok := s.active[depID]; ok && !dep.Status.IsTerminal() {
			return depBlocked, ""
		}
	}
	if s.cfg.DependencyPolicy == PolicyCascade {
		for _, depID := range t.DependsOn {
			if out, ok := s.terminal.Peek(depID); ok && out.status == model.TaskFailed {
				return depFailed, depID
			}
		}
	}
	return depReady, ""
}

// dequeueLocked moves every eligible task into the active set, up to the
// concurrency cap, and fails tasks whose dependency failed under cascade.
func (s *Scheduler) dequeueLocked() (started, cascaded []model.Task) {
	if len(s.queue) == 0 {
		return nil, nil
	}

	now := s.now()
	remaining := make([]queuedTask, 0, len(s.queue))
	for i, qt := range s.queue {
		if len(s.active) >= s.cfg.MaxConcurrent {
			remaining = append(remaining, s.queue[i:]...)
			break
		}

		t := qt.task
		state, failedDep := s.dependencyStateLocked(t)
		switch state {
		case depBlocked:
			remaining = append(remaining, qt)
		case depFailed:
			delete(s.pending, t.ID)
			t.Status = model.TaskFailed
			t.Error = ErrDependencyFailed.Error() + ": " + failedDep
			t.UpdatedAt = now
			s.terminal.Add(t.ID, terminalOutcome{status: model.TaskFailed, agentType: t.AgentType})
			cascaded = append(cascaded, cloneTask(t))
		default:
			delete(s.pending, t.ID)
			t.Status = model.TaskInProgress
			t.UpdatedAt = now
			t.Context.Upstream = s.upstreamLocked(t)
			s.active[t.ID] = t
			started = append(started, cloneTask(t))
		}
	}
	s.queue = remaining
	return started, cascaded
}

// upstreamLocked collects the results of t's completed dependencies in
// DependsOn order. Failed, evicted and unknown dependencies contribute nothing.
func (s *Scheduler) upstreamLocked(t *model.Task) []model.UpstreamResult {
	var upstream []model.UpstreamResult
	for _, depID := range t.DependsOn {
		out, ok := s.terminal.Peek(depID)
		if !ok || out.status != model.TaskCompleted || out.result == nil {
			continue
		}
		upstream = append(upstream, model.UpstreamResult{
			TaskID:    depID,
			AgentType: out.agentType,
			Content:   out.result.Content,
			Sources:   append([]string(nil), out.result.Sources...),
		})
	}
	return upstream
}

func cloneTask(t *model.Task) model.Task {
	out := *t
	out.DependsOn = append([]string(nil), t.DependsOn...)
	out.Context = t.Context.Clone()
	if t.Result != nil {
		r := *t.Result
		out.Result = &r
	}
	return out
}
