package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/urithi-ke/urithi/internal/worker"
)

var (
	concurrency  int
	batchTimeout time.Duration
	batchJSON    string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Answer questions from a file in parallel",
	Long: `Batch answers many questions concurrently:
- Read questions from the input file (one per line, # comments skipped)
- Answer them in parallel with a configurable worker count
- Completion calls share one rate limiter so the provider is not flooded
- Print each answer with its grounding sources

Example:
  urithi batch questions.txt
  urithi batch questions.txt --concurrency 8 --rps 2
  urithi batch questions.txt --json answers.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	registerCorpusFlags(batchCmd)
	registerLLMFlags(batchCmd)
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().DurationVar(&batchTimeout, "batch-timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&batchJSON, "json", "", "write results to a JSON file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Concurrency.Workers = concurrency

	assistant, err := newAssistant(ctx, cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(assistant, cfg.Concurrency.Workers)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		fmt.Printf("Q: %s\n", r.Question)
		if r.Error != nil {
			failed++
			fmt.Printf("A: (failed: %v)\n\n", r.Error)
			continue
		}
		fmt.Printf("A: %s\n", r.Answer)
		if len(r.Sources) > 0 {
			fmt.Printf("Sources: %v\n", r.Sources)
		}
		fmt.Println()
	}

	fmt.Fprintf(os.Stderr, "Answered %d/%d questions\n", len(results)-failed, len(results))

	if batchJSON != "" {
		if err := writeBatchJSON(batchJSON, results); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", batchJSON)
		}
	}

	return nil
}

type batchRecord struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer,omitempty"`
	Sources  []string `json:"sources,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func writeBatchJSON(path string, results []*worker.QuestionResult) error {
	records := make([]batchRecord, len(results))
	for i, r := range results {
		records[i] = batchRecord{
			Question: r.Question,
			Answer:   r.Answer,
			Sources:  r.Sources,
		}
		if r.Error != nil {
			records[i].Error = r.Error.Error()
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
