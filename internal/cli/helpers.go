package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/urithi-ke/urithi/internal/cache"
	"github.com/urithi-ke/urithi/internal/chat"
	"github.com/urithi-ke/urithi/internal/corpus"
	"github.com/urithi-ke/urithi/internal/llm"
	"github.com/urithi-ke/urithi/internal/model"
	"github.com/urithi-ke/urithi/internal/source"
	"github.com/urithi-ke/urithi/internal/worker"
)

// Flags shared by the commands that load the corpus or call a provider
var (
	corpusPath  string
	vocabFile   string
	maxResults  int
	noCache     bool
	cacheDir    string
	httpTimeout time.Duration
	llmProvider string
	llmModel    string
	llmBaseURL  string
	llmRPS      float64
)

// buildConfig assembles the effective configuration from defaults, config
// file / environment (viper), and flags.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("corpus.path"); v != "" {
		cfg.Corpus.Path = v
	}
	if v := viper.GetString("corpus.vocabulary_file"); v != "" {
		cfg.Corpus.VocabularyFile = v
	}
	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if v := viper.GetString("llm.base_url"); v != "" {
		cfg.LLM.BaseURL = v
	}

	// Flags win over file and environment
	if corpusPath != "" {
		cfg.Corpus.Path = corpusPath
	}
	if vocabFile != "" {
		cfg.Corpus.VocabularyFile = vocabFile
	}
	if maxResults > 0 {
		cfg.Corpus.MaxResults = maxResults
	}
	if httpTimeout > 0 {
		cfg.HTTP.Timeout = httpTimeout
	}
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	if llmBaseURL != "" {
		cfg.LLM.BaseURL = llmBaseURL
	}
	if llmRPS > 0 {
		cfg.LLM.RequestsPerSecond = llmRPS
	}
	cfg.Cache.Enabled = !noCache
	if cacheDir != "" {
		cfg.Cache.Dir = cacheDir
	}
	cfg.Output.Verbose = verbose

	return cfg
}

// resolveAPIKey fills cfg.LLM.APIKey from the environment for the selected
// provider. Ollama needs no key; its base URL may come from the environment.
func resolveAPIKey(cfg *model.Config) error {
	switch cfg.LLM.Provider {
	case "together":
		cfg.LLM.APIKey = os.Getenv("TOGETHER_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("TOGETHER_API_KEY environment variable not set")
		}
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" && cfg.LLM.BaseURL == "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}

// newCorpusCache wires the source, loader, and build-once cache together
func newCorpusCache(ctx context.Context, cfg *model.Config) (*corpus.Cache, error) {
	vocab := corpus.DefaultVocabulary()
	if cfg.Corpus.VocabularyFile != "" {
		loaded, err := corpus.LoadVocabulary(cfg.Corpus.VocabularyFile)
		if err != nil {
			return nil, fmt.Errorf("load vocabulary: %w", err)
		}
		vocab = loaded
	}
	loader := corpus.NewLoader(vocab)

	var opts []source.FetcherOption
	if cfg.HTTP.RespectRobots {
		opts = append(opts, source.WithRobots(source.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)))
	}
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			dir = defaultCacheDir()
		}
		layered := cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		opts = append(opts, source.WithCache(layered, cfg.Cache.DiskTTL))
	}
	fetcher := source.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes, opts...)

	location := cfg.Corpus.Path
	verboseOut := cfg.Output.Verbose
	return corpus.NewCache(func() []model.Fact {
		rows := source.LoadRows(ctx, location, fetcher, verboseOut)
		facts := loader.Build(rows)
		if verboseOut {
			fmt.Fprintf(os.Stderr, "Loaded %d cultural facts from %s\n", len(facts), location)
		}
		return facts
	}), nil
}

// newAssistant builds the full chat stack from configuration
func newAssistant(ctx context.Context, cfg *model.Config) (*chat.Assistant, error) {
	if err := resolveAPIKey(cfg); err != nil {
		return nil, err
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("initialize provider: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("no LLM provider configured (use --provider)")
	}

	corpusCache, err := newCorpusCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	limiter := worker.NewLimiter(cfg.LLM.RequestsPerSecond, 1)

	assistant := chat.NewAssistant(corpusCache, provider, limiter, cfg.Corpus.MaxResults)
	if !assistant.Grounded() && cfg.Output.Verbose {
		fmt.Fprintln(os.Stderr, "Warning: corpus is empty, answers will not be grounded")
	}
	return assistant, nil
}

// registerCorpusFlags adds the corpus and cache flags to a command
func registerCorpusFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus location: CSV file, CSV URL, or HTML table URL")
	cmd.Flags().StringVar(&vocabFile, "vocab", "", "YAML file overriding the keyword vocabulary")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "facts injected as grounding context (default 3)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable corpus caching (force fresh fetch)")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "corpus cache directory (default: ~/.urithi/cache)")
	cmd.Flags().DurationVar(&httpTimeout, "timeout", 0, "HTTP timeout for remote corpus fetches")
}

// registerLLMFlags adds the provider flags to a command
func registerLLMFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&llmProvider, "provider", "together", "LLM provider (together, openai, anthropic, ollama)")
	cmd.Flags().StringVar(&llmModel, "model", "", "LLM model name (provider default when empty)")
	cmd.Flags().StringVar(&llmBaseURL, "base-url", "", "custom API base URL")
	cmd.Flags().Float64Var(&llmRPS, "rps", 0, "max completion requests per second")
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".urithi-cache"
	}
	return filepath.Join(home, ".urithi", "cache")
}
