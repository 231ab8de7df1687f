package specialist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	"github.com/idreesmuhammadqazi-create/MUN/pkg/claude"
)

type mockCompleter struct {
	out        claude.Completion
	err        error
	lastSystem string
	lastPrompt string
}

func (m *mockCompleter) Complete(ctx context.Context, system, prompt string) (claude.Completion, error) {
	m.lastSystem = system
	m.lastPrompt = prompt
	return m.out, m.err
}

func (m *mockCompleter) Model() string { return "claude-test" }

func sampleContext() model.TaskContext {
	return model.TaskContext{
		SessionID: "s1",
		Phase:     model.PhaseModeratedCaucus,
		Representation: model.Representation{
			Country:   "Kenya",
			Committee: "UNEP",
			Topic:     "Plastic pollution",
		},
		PhaseData: map[string]any{"speakingTime": 60},
		RecentMessages: []model.Message{
			{Role: model.RoleUser, Content: "What is our stance?"},
			{Role: model.RoleAgent, AgentType: model.AgentResearch, Content: "Kenya banned plastic bags in 2017."},
		},
		Documents: []model.Document{{Filename: "brief.pdf", FileType: "application/pdf", Summary: "Country brief"}},
	}
}

func TestNewDefaultRegistry(t *testing.T) {
	t.Run("offline registers every type", func(t *testing.T) {
		r, err := NewDefaultRegistry(ProviderOffline, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, at := range model.AgentTypes {
			if _, ok := r.Get(at); !ok {
				t.Errorf("missing specialist for %s", at)
			}
		}
		if len(r.Types()) != len(model.AgentTypes) {
			t.Errorf("expected %d types, got %v", len(model.AgentTypes), r.Types())
		}
	})

	t.Run("anthropic requires llm", func(t *testing.T) {
		if _, err := NewDefaultRegistry(ProviderAnthropic, nil); !errors.Is(err, ErrMissingLLM) {
			t.Errorf("expected ErrMissingLLM, got %v", err)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		if _, err := NewDefaultRegistry("carrier-pigeon", nil); !errors.Is(err, ErrUnknownProvider) {
			t.Errorf("expected ErrUnknownProvider, got %v", err)
		}
	})
}

func TestOfflineSpecialist_Handle(t *testing.T) {
	s := &offlineSpecialist{agentType: model.AgentWriting}
	res, err := s.Handle(context.Background(), "draft an operative clause", sampleContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Writing briefing for Kenya", "UNEP", "Plastic pollution", "draft an operative clause", "1 attached document"} {
		if !strings.Contains(res.Content, want) {
			t.Errorf("expected content to contain %q, got %q", want, res.Content)
		}
	}
	if res.Confidence != ConfidenceOffline {
		t.Errorf("expected confidence %v, got %v", ConfidenceOffline, res.Confidence)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Handle(ctx, "q", sampleContext()); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestLLMSpecialist_Handle(t *testing.T) {
	llm := &mockCompleter{out: claude.Completion{
		Text:         "Kenya leads on plastics.\nSource: UNEP 2023 report",
		StopReason:   claude.StopReasonEndTurn,
		InputTokens:  40,
		OutputTokens: 10,
	}}
	r, err := NewDefaultRegistry(ProviderAnthropic, llm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := r.Get(model.AgentResearch)

	res, err := s.Handle(context.Background(), "What is our stance?", sampleContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Confidence != ConfidenceComplete {
		t.Errorf("expected confidence %v, got %v", ConfidenceComplete, res.Confidence)
	}
	if len(res.Sources) != 1 || res.Sources[0] != "UNEP 2023 report" {
		t.Errorf("unexpected sources %v", res.Sources)
	}
	if res.Metadata["model"] != "claude-test" {
		t.Errorf("expected model metadata, got %v", res.Metadata)
	}
	if !strings.Contains(llm.lastSystem, "research aide") {
		t.Errorf("expected research system prompt, got %q", llm.lastSystem)
	}
	for _, want := range []string{"Country: Kenya", "speakingTime: 60", "brief.pdf", "research: Kenya banned", "[REQUEST]\nWhat is our stance?"} {
		if !strings.Contains(llm.lastPrompt, want) {
			t.Errorf("expected prompt to contain %q, got %q", want, llm.lastPrompt)
		}
	}
}

func TestOfflineSpecialist_UsesUpstreamFindings(t *testing.T) {
	s := &offlineSpecialist{agentType: model.AgentWriting}
	tc := sampleContext()
	tc.Upstream = []model.UpstreamResult{
		{TaskID: "t1", AgentType: model.AgentResearch, Content: "Kenya banned plastic bags in 2017.\nMore detail follows."},
		{TaskID: "t2", AgentType: model.AgentAnalysis, Content: strings.Repeat("x", MaxUpstreamExcerpt+50)},
	}

	res, err := s.Handle(context.Background(), "draft a preambulatory clause", tc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Building on earlier findings:", "- Research: Kenya banned plastic bags in 2017.", "- Analysis: " + strings.Repeat("x", MaxUpstreamExcerpt) + "..."} {
		if !strings.Contains(res.Content, want) {
			t.Errorf("expected content to contain %q, got %q", want, res.Content)
		}
	}
	if strings.Contains(res.Content, "More detail follows") {
		t.Errorf("expected only the first line of upstream content, got %q", res.Content)
	}
}

func TestRenderContext_Upstream(t *testing.T) {
	tc := sampleContext()
	if out := renderContext(tc); strings.Contains(out, "Findings from earlier specialists") {
		t.Errorf("expected no upstream section without dependencies, got %q", out)
	}

	tc.Upstream = []model.UpstreamResult{{
		TaskID:    "t1",
		AgentType: model.AgentResearch,
		Content:   "Kenya banned plastic bags in 2017.",
		Sources:   []string{"NEMA notice 2017"},
	}}
	out := renderContext(tc)
	for _, want := range []string{"Findings from earlier specialists:\n", "- research (t1): Kenya banned plastic bags in 2017.\n", "  Source: NEMA notice 2017\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected context to contain %q, got %q", want, out)
		}
	}
}

func TestLLMSpecialist_HandleError(t *testing.T) {
	llm := &mockCompleter{err: errors.New("overloaded")}
	s := &llmSpecialist{agentType: model.AgentCrisis, llm: llm}
	_, err := s.Handle(context.Background(), "q", model.TaskContext{})
	if err == nil || !strings.Contains(err.Error(), "crisis specialist") {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestLLMSpecialist_TruncatedLowersConfidence(t *testing.T) {
	llm := &mockCompleter{out: claude.Completion{Text: "partial", StopReason: "max_tokens"}}
	s := &llmSpecialist{agentType: model.AgentAnalysis, llm: llm}
	res, err := s.Handle(context.Background(), "q", model.TaskContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Confidence != ConfidenceTruncated {
		t.Errorf("expected %v, got %v", ConfidenceTruncated, res.Confidence)
	}
}
