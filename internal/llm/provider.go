// Package llm abstracts hosted chat-completion providers behind a small
// interface. The assistant treats completion as opaque text generation:
// messages in, text out.
package llm

import (
	"context"

	"github.com/urithi-ke/urithi/internal/model"
)

// Message roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn in a conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest contains the input for a chat completion
type ChatRequest struct {
	// Messages is the full prompt: system, prior exchanges, user turn
	Messages []Message

	// Model overrides the configured model when non-empty
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature and TopP control sampling (zero values fall back to config)
	Temperature float32
	TopP        float32
}

// ChatResponse contains the generated reply
type ChatResponse struct {
	// Content is the generated text
	Content string

	// Model is the model that produced the response
	Model string

	// TokensUsed tracks total token consumption when reported
	TokensUsed int
}

// Provider defines the interface for chat-completion backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete generates a reply for the conversation
	Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Config holds provider configuration
type Config struct {
	// Provider name: "openai", "together", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// Sampling parameters
	Temperature float32
	TopP        float32
}

// DefaultConfig returns sensible defaults. The sampling parameters match
// the assistant's tuning for warm, conversational answers.
func DefaultConfig() Config {
	return Config{
		Provider:    "",
		Model:       "",
		Timeout:     30,
		MaxTokens:   400,
		Temperature: 0.7,
		TopP:        0.9,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:    mc.Provider,
		Model:       mc.Model,
		APIKey:      mc.APIKey,
		BaseURL:     mc.BaseURL,
		Timeout:     mc.Timeout,
		MaxTokens:   mc.MaxTokens,
		Temperature: mc.Temperature,
		TopP:        mc.TopP,
	}
}
