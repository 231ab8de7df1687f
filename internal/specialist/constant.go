package specialist

import "github.com/idreesmuhammadqazi-create/MUN/internal/model"

// Providers
const (
	ProviderOffline   = "offline"
	ProviderAnthropic = "anthropic"
)

// Confidence reported by the built-in specialists.
const (
	ConfidenceOffline    = 0.5
	ConfidenceComplete   = 0.85
	ConfidenceTruncated  = 0.6
	MaxContextMessages   = 10
	MaxDocumentsInPrompt = 5
	MaxUpstreamExcerpt   = 280
)

const systemPromptBase = `You assist a delegate at a Model United Nations conference.
Stay in character for the delegate's country, respect committee procedure, and answer concisely.`

// SystemPrompts holds the per-type instructions appended to systemPromptBase.
var SystemPrompts = map[model.AgentType]string{
	model.AgentResearch: `Role: research aide. Provide factual background, the country's known positions,
relevant treaties and statistics. Name your sources on separate lines prefixed with "Source:".`,
	model.AgentProcedure: `Role: parliamentary procedure advisor. Explain which motion or point applies,
when it is in order, and the exact wording to use.`,
	model.AgentWriting: `Role: drafting assistant. Produce resolution clauses, speeches or position paper text
in formal MUN style. Use preambulatory and operative phrasing where appropriate.`,
	model.AgentCrisis: `Role: crisis strategist. Assess the developing situation, list immediate options for the
delegate, and suggest directives.`,
	model.AgentAnalysis: `Role: policy analyst. Compare positions, identify likely allies and opponents,
and weigh the implications of each course of action.`,
}

// offlineGuidance is used when no LLM is configured.
var offlineGuidance = map[model.AgentType]string{
	model.AgentResearch:  "Start from the country's official statements at the UN and recent voting records on this topic.",
	model.AgentProcedure: "Check the committee's rules of procedure; points of order may interrupt a speaker, motions may not.",
	model.AgentWriting:   "Open with preambulatory clauses citing prior resolutions, then number operative clauses with action verbs.",
	model.AgentCrisis:    "Stabilise first: secure allies, request information from the dais, then propose a directive.",
	model.AgentAnalysis:  "Map delegations into blocs by shared interests and look for the swing votes.",
}
