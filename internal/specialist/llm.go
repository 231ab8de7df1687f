package specialist

import (
	"context"
	"fmt"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/pkg/claude"
)

// llmSpecialist answers through the configured language model.
type llmSpecialist struct {
	agentType model.AgentType
	llm       Completer
	system    string
}

func (s *llmSpecialist) Type() model.AgentType { return s.agentType }

func (s *llmSpecialist) Handle(ctx context.Context, query string, tc model.TaskContext) (model.Result, error) {
	prompt := renderContext(tc) + "\n[REQUEST]\n" + query

	out, err := s.llm.Complete(ctx, s.system, prompt)
	if err != nil {
		return model.Result{}, fmt.Errorf("%s specialist: %w", s.agentType, err)
	}

	confidence := ConfidenceTruncated
	if out.StopReason == claude.StopReasonEndTurn {
		confidence = ConfidenceComplete
	}

	return model.Result{
		Content: out.Text,
		Metadata: map[string]any{
			"provider":      ProviderAnthropic,
			"model":         s.llm.Model(),
			"input_tokens":  out.InputTokens,
			"output_tokens": out.OutputTokens,
		},
		Sources:    extractSources(out.Text),
		Confidence: confidence,
	}, nil
}
