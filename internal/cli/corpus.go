package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

// corpusCmd represents the corpus command
var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Load the corpus and summarize its contents",
	Long: `Corpus loads the cultural-facts corpus and prints a summary:
fact count, facts per cultural group, and facts per category. Useful for
checking a new corpus file before chatting against it.

Example:
  urithi corpus
  urithi corpus --corpus ./data/kenyan-culture.csv -v`,
	Args: cobra.NoArgs,
	RunE: runCorpus,
}

func init() {
	rootCmd.AddCommand(corpusCmd)

	registerCorpusFlags(corpusCmd)
}

func runCorpus(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := buildConfig()
	corpusCache, err := newCorpusCache(ctx, cfg)
	if err != nil {
		return err
	}

	facts := corpusCache.Facts()
	fmt.Printf("Facts: %d (%s)\n", len(facts), cfg.Corpus.Path)
	if len(facts) == 0 {
		return nil
	}

	tribes := make(map[string]int)
	categories := make(map[string]int)
	for _, f := range facts {
		if f.Tribe != "" {
			tribes[f.Tribe]++
		}
		if f.Category != "" {
			categories[f.Category]++
		}
	}

	fmt.Printf("\nCultural groups (%d):\n", len(tribes))
	printCounts(tribes)

	fmt.Printf("\nCategories (%d):\n", len(categories))
	printCounts(categories)

	return nil
}

func printCounts(counts map[string]int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		fmt.Printf("  %-20s %d\n", name, counts[name])
	}
}
