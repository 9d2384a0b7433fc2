// Package chat orchestrates grounded conversations: retrieve the most
// relevant cultural facts for a user message, inject them as context, and
// hand the assembled prompt to a chat-completion provider.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/urithi-ke/urithi/internal/corpus"
	"github.com/urithi-ke/urithi/internal/llm"
	"github.com/urithi-ke/urithi/internal/search"
	"github.com/urithi-ke/urithi/internal/worker"
)

// historyWindow is how many trailing history messages (3 exchanges) are
// kept in the prompt.
const historyWindow = 6

// defaultMaxResults is how many facts ground an answer by default
const defaultMaxResults = 3

// Assistant answers questions about Kenyan culture, grounding each answer
// on retrieved facts when the corpus has any to offer.
type Assistant struct {
	corpus     *corpus.Cache
	provider   llm.Provider
	limiter    *worker.Limiter
	maxResults int
}

// NewAssistant creates an assistant. The limiter may be nil to disable rate
// limiting; maxResults <= 0 falls back to the default.
func NewAssistant(c *corpus.Cache, provider llm.Provider, limiter *worker.Limiter, maxResults int) *Assistant {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return &Assistant{
		corpus:     c,
		provider:   provider,
		limiter:    limiter,
		maxResults: maxResults,
	}
}

// Reply is one assistant answer plus the titles of the facts it was
// grounded on, for display as sources.
type Reply struct {
	Message      string
	Sources      []string
	SourcesCount int
}

// Respond answers userMessage in the context of prior history. An empty
// corpus is not an error: the completion proceeds without grounding and the
// reply simply carries no sources.
func (a *Assistant) Respond(ctx context.Context, userMessage string, history []llm.Message) (*Reply, error) {
	if a.provider == nil {
		return nil, fmt.Errorf("no completion provider configured")
	}

	facts := search.TopFacts(userMessage, a.corpus.Facts(), a.maxResults)

	sources := make([]string, len(facts))
	blocks := make([]string, len(facts))
	for i, fact := range facts {
		sources[i] = fact.Title
		blocks[i] = fact.Title + "\n" + fact.Content
	}
	contextBlock := strings.Join(blocks, "\n\n")

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: BuildSystemPrompt(contextBlock)},
	}
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMessage})

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx, a.provider.Name()); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	resp, err := a.provider.Complete(ctx, llm.ChatRequest{Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("completion: %w", err)
	}

	return &Reply{
		Message:      resp.Content,
		Sources:      sources,
		SourcesCount: len(sources),
	}, nil
}

// Answer adapts Respond for batch processing: one question, no history.
func (a *Assistant) Answer(ctx context.Context, question string) (string, []string, error) {
	reply, err := a.Respond(ctx, question, nil)
	if err != nil {
		return "", nil, err
	}
	return reply.Message, reply.Sources, nil
}

// Grounded reports whether the assistant has any facts to retrieve from
func (a *Assistant) Grounded() bool {
	return a.corpus.Ready()
}

// BuildSystemPrompt assembles the system prompt, inserting the verified
// information block only when grounding context exists.
func BuildSystemPrompt(contextBlock string) string {
	var b strings.Builder

	b.WriteString("You are a knowledgeable and friendly assistant about Kenyan culture and traditions.\n")
	b.WriteString("You help people learn about Kenya's diverse tribes including Kikuyu, Maasai, Luo, Luhya, Kalenjin, Kamba, Kisii, Meru, and others.\n\n")

	if contextBlock != "" {
		b.WriteString("Use the following verified information to answer the question:\n\n")
		b.WriteString(contextBlock)
		b.WriteString("\n\n")
	}

	b.WriteString("Guidelines:\n")
	b.WriteString("- Be warm, friendly, and culturally respectful\n")
	b.WriteString("- Provide accurate information based on the context provided\n")
	b.WriteString("- If you don't know something, admit it honestly\n")
	b.WriteString("- Keep responses concise but informative (2-3 paragraphs max)\n")
	b.WriteString("- Encourage cultural appreciation and respect\n")
	b.WriteString("- Use simple, clear language")

	return b.String()
}
