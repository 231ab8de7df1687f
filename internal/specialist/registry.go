package specialist

import (
	"sort"
	"sync"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
)

// Registry maps agent types to specialists.
type Registry struct {
	mu          sync.RWMutex
	specialists map[model.AgentType]Specialist
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		specialists: make(map[model.AgentType]Specialist),
	}
}

// Register adds or replaces the specialist for its type.
func (r *Registry) Register(s Specialist) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specialists[s.Type()] = s
}

// Get retrieves the specialist for agentType.
func (r *Registry) Get(agentType model.AgentType) (Specialist, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.specialists[agentType]
	return s, ok
}

// Types returns the registered agent types in sorted order.
func (r *Registry) Types() []model.AgentType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]model.AgentType, 0, len(r.specialists))
	for t := range r.specialists {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
