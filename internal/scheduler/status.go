package scheduler

import (
	"sort"
)

// Status returns the in-flight tasks and queue length, limited to one session
// when sessionID is non-empty.
func (s *Scheduler) Status(sessionID string) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		ActiveAgents:  make([]ActiveTask, 0, len(s.active)),
		MaxConcurrent: s.cfg.MaxConcurrent,
	}
	for _, t := range s.active {
		if sessionID != "" && t.SessionID() != sessionID {
			continue
		}
		st.ActiveAgents = append(st.ActiveAgents, ActiveTask{
			TaskID:    t.ID,
			SessionID: t.SessionID(),
			AgentType: t.AgentType,
			Status:    t.Status,
			Priority:  t.Priority,
			StartedAt: t.UpdatedAt,
		})
	}
	sort.Slice(st.ActiveAgents, func(i, j int) bool {
		if !st.ActiveAgents[i].StartedAt.Equal(st.ActiveAgents[j].StartedAt) {
			return st.ActiveAgents[i].StartedAt.Before(st.ActiveAgents[j].StartedAt)
		}
		return st.ActiveAgents[i].TaskID < st.ActiveAgents[j].TaskID
	})

	for _, qt := range s.queue {
		if sessionID == "" || qt.task.SessionID() == sessionID {
			st.QueueLength++
		}
	}
	return st
}
