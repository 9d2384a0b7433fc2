package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var askTimeout time.Duration

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question about Kenyan culture",
	Long: `Ask answers one question and exits:
- Retrieve the most relevant cultural facts for the question
- Inject them as verified context into the language-model prompt
- Print the answer and the fact titles used as sources

Example:
  urithi ask "tell me about maasai ceremonies"
  urithi ask "what is githeri" --provider ollama
  urithi ask "luo music" --corpus ./data/kenyan-culture.csv --max-results 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	registerCorpusFlags(askCmd)
	registerLLMFlags(askCmd)
	askCmd.Flags().DurationVar(&askTimeout, "ask-timeout", 2*time.Minute, "overall timeout for the answer")
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	cfg := buildConfig()
	assistant, err := newAssistant(ctx, cfg)
	if err != nil {
		return err
	}

	reply, err := assistant.Respond(ctx, question, nil)
	if err != nil {
		return err
	}

	fmt.Println(reply.Message)

	if cfg.Output.ShowSources && reply.SourcesCount > 0 {
		fmt.Fprintf(os.Stderr, "\nSources: %s\n", strings.Join(reply.Sources, ", "))
	}

	return nil
}
