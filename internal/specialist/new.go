package specialist

import (
	"fmt"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
)

// NewDefaultRegistry registers a built-in specialist for every agent type
// using the given provider. llm is only required for ProviderAnthropic.
func NewDefaultRegistry(provider string, llm Completer) (*Registry, error) {
	r := NewRegistry()
	for _, agentType := range model.AgentTypes {
		switch provider {
		case ProviderOffline, "":
			r.Register(&offlineSpecialist{agentType: agentType})
		case ProviderAnthropic:
			if llm == nil {
				return nil, ErrMissingLLM
			}
			r.Register(&llmSpecialist{
				agentType: agentType,
				llm:       llm,
				system:    systemPromptBase + "\n\n" + SystemPrompts[agentType],
			})
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
		}
	}
	return r, nil
}
