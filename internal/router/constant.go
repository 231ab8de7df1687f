package router

import "github.com/idreesmuhammadqazi-create/MUN/internal/model"

// Keyword classes. Single words match whole tokens; a trailing "*" marks a
// stem that matches as a token prefix ("analy*" matches "analysis" and
// "analyze"). Phrases match against the normalized message.
var (
	KeywordsResearch = []string{
		"research", "information", "inform", "background", "history", "historical",
		"statistic*", "data", "fact", "facts", "source", "sources", "evidence",
		"position", "positions", "stance", "policy", "policies", "treaty", "treaties",
		"what is", "who is", "tell me about",
	}

	KeywordsProcedure = []string{
		"procedure", "procedures", "procedural", "rule", "rules", "motion", "motions",
		"point of order", "point of information", "caucus", "yield", "quorum", "vote", "votes",
		"voting", "parliamentary", "speakers list", "speaking time", "chair", "dais",
		"how do i", "am i allowed",
	}

	KeywordsWriting = []string{
		"draft*", "write", "writing", "resolution", "resolutions", "clause", "clauses",
		"speech", "speeches", "position paper", "operative", "preambulatory", "amend*",
		"working paper", "directive", "directives",
	}

	KeywordsCrisis = []string{
		"crisis", "emergency", "attack", "attacks", "breaking", "escalat*", "invasion",
		"outbreak", "coup", "coups", "update from the dais",
	}

	KeywordsAnalysis = []string{
		"analy*", "compare", "comparison", "evaluate", "assess*", "impact", "impacts",
		"implication", "implications", "strategy", "strategic", "bloc", "blocs", "ally",
		"allies", "alliance", "alliances", "pros and cons", "likely",
	}

	KeywordsUrgent = []string{"urgent", "asap", "immediately", "right now"}
)

// Plan defaults
const (
	FallbackAgentType = model.AgentResearch
	FallbackPriority  = model.PriorityMedium
)

// Reasons attached to plans.
const (
	ReasonNoMatch        = "no keyword class matched; defaulting to research"
	ReasonKeywordMatch   = "matched keyword classes"
	ReasonPhaseCrisis    = "crisis phase requires crisis and research specialists"
	ReasonPhaseVoting    = "voting phase requires procedure specialist"
	ReasonPhaseDrafting  = "drafting phase requires writing specialist"
	ReasonUrgentKeywords = "urgent wording raised priority to critical"
)
