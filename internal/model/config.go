package model

import "time"

// Config holds the full application configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Corpus      CorpusConfig      `yaml:"corpus"`
	LLM         LLMConfig         `yaml:"llm"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls corpus fetching over HTTP
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots"`
}

// CacheConfig controls corpus document caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// CorpusConfig controls corpus loading
type CorpusConfig struct {
	// Path is a local CSV file or an http(s) URL to a CSV or HTML table
	Path string `yaml:"path"`

	// VocabularyFile optionally overrides the built-in keyword vocabulary
	VocabularyFile string `yaml:"vocabulary_file"`

	// MaxResults is how many facts are injected as grounding context
	MaxResults int `yaml:"max_results"`
}

// LLMConfig holds chat-completion provider configuration
type LLMConfig struct {
	// Provider name: "openai", "together", "anthropic", "ollama", ""
	Provider string `yaml:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model"`

	// APIKey for hosted providers
	APIKey string `yaml:"-"`

	// BaseURL for custom endpoints (Together, Ollama, proxies)
	BaseURL string `yaml:"base_url"`

	// Timeout for API requests, in seconds
	Timeout int `yaml:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `yaml:"max_tokens"`

	// Temperature for response sampling
	Temperature float32 `yaml:"temperature"`

	// TopP nucleus sampling parameter
	TopP float32 `yaml:"top_p"`

	// RequestsPerSecond caps completion calls per provider host
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose     bool `yaml:"verbose"`
	ShowSources bool `yaml:"show_sources"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Urithi/0.1 (+https://github.com/urithi-ke/urithi)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Corpus: CorpusConfig{
			Path:       "data/kenyan-culture.csv",
			MaxResults: 3,
		},
		LLM: LLMConfig{
			Provider:          "",
			Model:             "",
			Timeout:           30,
			MaxTokens:         400,
			Temperature:       0.7,
			TopP:              0.9,
			RequestsPerSecond: 1,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:     false,
			ShowSources: true,
		},
	}
}
