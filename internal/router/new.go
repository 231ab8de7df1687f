package router

import (
	"errors"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
)

var ErrEmptyMessage = errors.New("message content is empty")

// Router turns a raw message into a task plan.
type Router interface {
	Classify(message string, sess model.Session) (TaskPlan, error)
}

// KeywordRouter classifies messages against fixed keyword classes.
// It holds no mutable state and is safe for concurrent use.
type KeywordRouter struct {
	classes map[model.AgentType][]string
	urgent  []string
}

var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter with the default keyword classes.
func New() *KeywordRouter {
	return &KeywordRouter{
		classes: map[model.AgentType][]string{
			model.AgentResearch:  KeywordsResearch,
			model.AgentProcedure: KeywordsProcedure,
			model.AgentWriting:   KeywordsWriting,
			model.AgentCrisis:    KeywordsCrisis,
			model.AgentAnalysis:  KeywordsAnalysis,
		},
		urgent: KeywordsUrgent,
	}
}
