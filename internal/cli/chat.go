package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/urithi-ke/urithi/internal/chat"
	"github.com/urithi-ke/urithi/internal/llm"
)

var sessionTTL time.Duration

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat about Kenyan culture",
	Long: `Chat runs an interactive conversation:
- Each message is answered with grounding from the cultural-facts corpus
- The last three exchanges stay in the prompt for continuity
- Type /sources after an answer to see which facts grounded it
- Type /quit or press Ctrl-D to leave

Example:
  urithi chat
  urithi chat --provider ollama --model llama3.2
  urithi chat --corpus https://example.com/culture.csv`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	registerCorpusFlags(chatCmd)
	registerLLMFlags(chatCmd)
	chatCmd.Flags().DurationVar(&sessionTTL, "session-ttl", 2*time.Hour, "idle time before a session expires")
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := buildConfig()
	assistant, err := newAssistant(ctx, cfg)
	if err != nil {
		return err
	}

	store := chat.NewSessionStore(sessionTTL)
	var session *chat.Session
	var lastSources []string

	fmt.Fprintln(os.Stderr, "Karibu! Ask me anything about Kenyan culture. /quit to leave.")
	if !assistant.Grounded() {
		fmt.Fprintln(os.Stderr, "(corpus unavailable: answers will not be grounded)")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, "\n> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "/quit", "/exit":
			return scanner.Err()
		case "/sources":
			if len(lastSources) == 0 {
				fmt.Println("No sources for the last answer.")
			} else {
				fmt.Printf("Sources: %s\n", strings.Join(lastSources, ", "))
			}
			continue
		}

		if session == nil {
			session = store.Create(line)
			if verbose {
				fmt.Fprintf(os.Stderr, "Session %s: %s\n", session.ID, session.Title)
			}
		}

		current, _ := store.Get(session.ID)
		reply, err := assistant.Respond(ctx, line, current.Messages)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		fmt.Println(reply.Message)
		lastSources = reply.Sources

		_ = store.Append(session.ID, llm.Message{Role: llm.RoleUser, Content: line})
		_ = store.Append(session.ID, llm.Message{Role: llm.RoleAssistant, Content: reply.Message})
	}

	return scanner.Err()
}
