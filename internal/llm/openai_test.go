package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
)

func TestOpenAIProvider_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected path /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("expected Authorization Bearer test-key, got %s", r.Header.Get("Authorization"))
		}

		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("expected system+user messages, got %+v", req.Messages)
		}
		if req.MaxTokens != 400 {
			t.Errorf("expected max tokens 400, got %d", req.MaxTokens)
		}

		resp := openai.ChatCompletionResponse{
			ID:    "chatcmpl-1",
			Model: req.Model,
			Choices: []openai.ChatCompletionChoice{
				{
					Message: openai.ChatCompletionMessage{
						Role:    "assistant",
						Content: "  The Eunoto ceremony marks warrior graduation.  ",
					},
					FinishReason: "stop",
				},
			},
			Usage: openai.Usage{TotalTokens: 42},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{
		APIKey:      "test-key",
		BaseURL:     server.URL,
		Model:       "gpt-4o-mini",
		Timeout:     5,
		MaxTokens:   400,
		Temperature: 0.7,
		TopP:        0.9,
	})
	if err != nil {
		t.Fatalf("create provider: %v", err)
	}

	resp, err := provider.Complete(context.Background(), ChatRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a helpful assistant about Kenyan culture."},
			{Role: RoleUser, Content: "What is Eunoto?"},
		},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if resp.Content != "The Eunoto ceremony marks warrior graduation." {
		t.Errorf("expected trimmed content, got %q", resp.Content)
	}
	if resp.TokensUsed != 42 {
		t.Errorf("expected 42 tokens, got %d", resp.TokensUsed)
	}
}

func TestOpenAIProvider_RequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{}); err == nil {
		t.Error("expected error for missing API key")
	}
	if _, err := NewTogetherProvider(Config{}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestTogetherProvider_Defaults(t *testing.T) {
	provider, err := NewTogetherProvider(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("create provider: %v", err)
	}
	if provider.Name() != "together" {
		t.Errorf("expected name together, got %s", provider.Name())
	}
	if provider.config.Model != togetherDefaultModel {
		t.Errorf("expected default Qwen model, got %s", provider.config.Model)
	}
}

func TestOpenAIProvider_EmptyMessages(t *testing.T) {
	provider, err := NewOpenAIProvider(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("create provider: %v", err)
	}
	if _, err := provider.Complete(context.Background(), ChatRequest{}); err == nil {
		t.Error("expected error for empty messages")
	}
}
