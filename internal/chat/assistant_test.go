package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/urithi-ke/urithi/internal/corpus"
	"github.com/urithi-ke/urithi/internal/llm"
	"github.com/urithi-ke/urithi/internal/model"
)

// fakeProvider records the last request and returns a canned reply
type fakeProvider struct {
	lastReq llm.ChatRequest
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) IsAvailable(ctx context.Context) bool { return true }

func (p *fakeProvider) Complete(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	p.lastReq = req
	return &llm.ChatResponse{Content: "Eunoto marks warrior graduation.", Model: "fake-model"}, nil
}

func factCache() *corpus.Cache {
	return corpus.NewCache(func() []model.Fact {
		return []model.Fact{
			{
				ID: 1, Tribe: "Maasai", Category: "ceremony", Title: "Eunoto",
				Content:  "Eunoto marks warrior graduation.",
				Keywords: []string{"maasai", "ceremony", "warrior"},
			},
			{
				ID: 2, Tribe: "Kikuyu", Category: "food", Title: "Githeri",
				Content:  "Githeri is a maize and beans dish.",
				Keywords: []string{"kikuyu", "food"},
			},
		}
	})
}

func TestAssistant_Respond_Grounded(t *testing.T) {
	provider := &fakeProvider{}
	assistant := NewAssistant(factCache(), provider, nil, 3)

	reply, err := assistant.Respond(context.Background(), "tell me about maasai ceremonies", nil)
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}

	if reply.SourcesCount != 1 || reply.Sources[0] != "Eunoto" {
		t.Errorf("expected Eunoto as the single source, got %v", reply.Sources)
	}

	system := provider.lastReq.Messages[0]
	if system.Role != llm.RoleSystem {
		t.Fatalf("expected system message first, got role %s", system.Role)
	}
	if !strings.Contains(system.Content, "verified information") {
		t.Error("expected grounding block in system prompt")
	}
	if !strings.Contains(system.Content, "Eunoto\nEunoto marks warrior graduation.") {
		t.Error("expected fact title and content joined in context")
	}
	if strings.Contains(system.Content, "Githeri") {
		t.Error("unrelated fact leaked into context")
	}

	last := provider.lastReq.Messages[len(provider.lastReq.Messages)-1]
	if last.Role != llm.RoleUser || last.Content != "tell me about maasai ceremonies" {
		t.Errorf("expected user message last, got %+v", last)
	}
}

func TestAssistant_Respond_EmptyCorpus(t *testing.T) {
	provider := &fakeProvider{}
	empty := corpus.NewCache(func() []model.Fact { return nil })
	assistant := NewAssistant(empty, provider, nil, 3)

	reply, err := assistant.Respond(context.Background(), "tell me about maasai ceremonies", nil)
	if err != nil {
		t.Fatalf("expected ungrounded answer, got error: %v", err)
	}

	if reply.SourcesCount != 0 {
		t.Errorf("expected no sources, got %v", reply.Sources)
	}
	if strings.Contains(provider.lastReq.Messages[0].Content, "verified information") {
		t.Error("expected no grounding block for empty corpus")
	}
	if assistant.Grounded() {
		t.Error("expected Grounded() false for empty corpus")
	}
}

func TestAssistant_Respond_HistoryWindow(t *testing.T) {
	provider := &fakeProvider{}
	assistant := NewAssistant(factCache(), provider, nil, 3)

	var history []llm.Message
	for i := 0; i < 10; i++ {
		role := llm.RoleUser
		if i%2 == 1 {
			role = llm.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: strings.Repeat("x", i+1)})
	}

	if _, err := assistant.Respond(context.Background(), "what about githeri", history); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}

	// system + 6 history + user
	if got := len(provider.lastReq.Messages); got != 8 {
		t.Fatalf("expected 8 messages, got %d", got)
	}
	// Trailing 6 kept: first history message in prompt is the 5th overall
	if provider.lastReq.Messages[1].Content != strings.Repeat("x", 5) {
		t.Errorf("expected oldest history dropped, got %q", provider.lastReq.Messages[1].Content)
	}
}

func TestAssistant_Respond_NoProvider(t *testing.T) {
	assistant := NewAssistant(factCache(), nil, nil, 3)

	if _, err := assistant.Respond(context.Background(), "hello", nil); err == nil {
		t.Error("expected error without a provider")
	}
}

func TestAssistant_Answer(t *testing.T) {
	provider := &fakeProvider{}
	assistant := NewAssistant(factCache(), provider, nil, 3)

	answer, sources, err := assistant.Answer(context.Background(), "what is eunoto")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if answer == "" {
		t.Error("expected non-empty answer")
	}
	if len(sources) != 1 {
		t.Errorf("expected 1 source, got %v", sources)
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	with := BuildSystemPrompt("Eunoto\nWarrior graduation.")
	if !strings.Contains(with, "Use the following verified information") {
		t.Error("expected context preamble when grounding present")
	}
	if !strings.Contains(with, "Guidelines:") {
		t.Error("expected guidelines section")
	}

	without := BuildSystemPrompt("")
	if strings.Contains(without, "verified information") {
		t.Error("expected no context preamble when grounding absent")
	}
	if !strings.Contains(without, "Guidelines:") {
		t.Error("expected guidelines section")
	}
}
