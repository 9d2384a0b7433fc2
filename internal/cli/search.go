package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/urithi-ke/urithi/internal/search"
)

var searchLimit int

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Rank corpus facts against a query without calling the LLM",
	Long: `Search runs the relevance ranker alone and prints the scored facts.
The scoring is transparent: tribe mention +10, title containment +8,
category +5, +3 per matching keyword, +1 per query word found in the
content. Useful for inspecting what would ground an answer.

Example:
  urithi search "maasai wedding"
  urithi search "githeri" --limit 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	registerCorpusFlags(searchCmd)
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum facts to print")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := buildConfig()
	corpusCache, err := newCorpusCache(ctx, cfg)
	if err != nil {
		return err
	}

	facts := corpusCache.Facts()
	if len(facts) == 0 {
		return fmt.Errorf("corpus is empty")
	}

	scored := search.Rank(query, facts)
	if len(scored) == 0 {
		fmt.Println("No matching facts.")
		return nil
	}
	if searchLimit > 0 && len(scored) > searchLimit {
		scored = scored[:searchLimit]
	}

	for i, s := range scored {
		fmt.Printf("%2d. [%3d] %s", i+1, s.Score, s.Fact.Title)
		if s.Fact.Tribe != "" {
			fmt.Printf(" (%s)", s.Fact.Tribe)
		}
		fmt.Println()
		if verbose {
			fmt.Printf("      keywords: %s\n", strings.Join(s.Fact.Keywords, ", "))
		}
	}

	return nil
}
