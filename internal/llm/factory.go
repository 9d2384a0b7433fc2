package llm

import (
	"fmt"
	"strings"
)

// NewProvider creates a chat-completion provider based on configuration.
// An empty provider name disables completion (nil, nil): the assistant then
// answers from retrieved facts alone.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "together":
		return NewTogetherProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, together, anthropic, ollama)", config.Provider)
	}
}
