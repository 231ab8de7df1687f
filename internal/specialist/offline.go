package specialist

import (
	"context"
	"fmt"
	"strings"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
)

// offlineSpecialist answers with static guidance shaped by the session context.
type offlineSpecialist struct {
	agentType model.AgentType
}

func (s *offlineSpecialist) Type() model.AgentType { return s.agentType }

func (s *offlineSpecialist) Handle(ctx context.Context, query string, tc model.TaskContext) (model.Result, error) {
	if err := ctx.Err(); err != nil {
		return model.Result{}, err
	}

	var sb strings.Builder
	rep := tc.Representation
	subject := rep.Country
	if subject == "" {
		subject = "your delegation"
	}
	sb.WriteString(fmt.Sprintf("%s briefing for %s", titleCase(string(s.agentType)), subject))
	if rep.Committee != "" {
		sb.WriteString(" in " + rep.Committee)
	}
	if rep.Topic != "" {
		sb.WriteString(" on " + rep.Topic)
	}
	sb.WriteString(".\n\n")
	sb.WriteString(offlineGuidance[s.agentType])
	if len(tc.Upstream) > 0 {
		sb.WriteString("\n\nBuilding on earlier findings:")
		for _, u := range tc.Upstream {
			sb.WriteString(fmt.Sprintf("\n- %s: %s", titleCase(string(u.AgentType)), excerpt(u.Content, MaxUpstreamExcerpt)))
		}
	}
	sb.WriteString("\n\nRequest: " + strings.TrimSpace(query))
	if n := len(tc.Documents); n > 0 {
		sb.WriteString(fmt.Sprintf("\nConsider the %d attached document(s).", n))
	}

	return model.Result{
		Content:    sb.String(),
		Metadata:   map[string]any{"provider": ProviderOffline, "phase": string(tc.Phase)},
		Confidence: ConfidenceOffline,
	}, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
