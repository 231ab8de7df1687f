package router

import (
	"strings"
	"unicode"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
)

// Classify determines which specialists a message needs and at what priority.
// It depends only on the message content and the session phase.
func (r *KeywordRouter) Classify(message string, sess model.Session) (TaskPlan, error) {
	tokens := tokenize(message)
	if len(tokens) == 0 {
		return TaskPlan{}, ErrEmptyMessage
	}
	normalized := " " + strings.Join(tokens, " ") + " "

	matched := make(map[model.AgentType]bool, len(r.classes))
	for agentType, keywords := range r.classes {
		if matchesAny(tokens, normalized, keywords) {
			matched[agentType] = true
		}
	}

	plan := TaskPlan{Priority: model.PriorityMedium}
	if len(matched) > 0 {
		plan.Reasons = append(plan.Reasons, ReasonKeywordMatch)
	}
	if matched[model.AgentProcedure] || matched[model.AgentCrisis] {
		plan.Priority = model.PriorityHigh
	}

	switch sess.CurrentPhase {
	case model.PhaseCrisis:
		matched[model.AgentCrisis] = true
		matched[model.AgentResearch] = true
		plan.Priority = model.PriorityHigh
		plan.Reasons = append(plan.Reasons, ReasonPhaseCrisis)
	case model.PhaseVoting:
		matched[model.AgentProcedure] = true
		plan.Reasons = append(plan.Reasons, ReasonPhaseVoting)
	case model.PhaseDrafting:
		if len(matched) > 0 && !matched[model.AgentWriting] {
			matched[model.AgentWriting] = true
			plan.Reasons = append(plan.Reasons, ReasonPhaseDrafting)
		}
	}

	for _, agentType := range model.AgentTypes {
		if matched[agentType] {
			plan.AgentTypes = append(plan.AgentTypes, agentType)
		}
	}

	if len(plan.AgentTypes) == 0 {
		return TaskPlan{
			AgentTypes: []model.AgentType{FallbackAgentType},
			Priority:   FallbackPriority,
			Reasons:    []string{ReasonNoMatch},
		}, nil
	}

	// The crisis phase pins priority at high.
	if sess.CurrentPhase != model.PhaseCrisis && matchesAny(tokens, normalized, r.urgent) {
		plan.Priority = model.PriorityCritical
		plan.Reasons = append(plan.Reasons, ReasonUrgentKeywords)
	}

	return plan, nil
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func matchesAny(tokens []string, normalized string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(normalized, " "+kw+" ") {
				return true
			}
			continue
		}
		stem, isStem := strings.CutSuffix(kw, "*")
		for _, tok := range tokens {
			if tok == kw || (isStem && strings.HasPrefix(tok, stem)) {
				return true
			}
		}
	}
	return false
}
