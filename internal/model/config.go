package model

import "time"

// Config holds the complete runtime configuration.
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Recommend   RecommendConfig   `yaml:"recommend"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// LLMConfig configures the upstream generation provider.
type LLMConfig struct {
	Provider          string  `yaml:"provider"` // "openai" or "" (disabled)
	Model             string  `yaml:"model"`
	APIKey            string  `yaml:"-"` // from env only, never written to config files
	BaseURL           string  `yaml:"base_url,omitempty"`
	Timeout           int     `yaml:"timeout"` // seconds
	MaxTokens         int     `yaml:"max_tokens"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// RecommendConfig configures recommendation generation.
type RecommendConfig struct {
	MaxResults int           `yaml:"max_results"` // hard cap on returned candidates
	CacheTTL   time.Duration `yaml:"cache_ttl"`
}

// CacheConfig configures the LLM response cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir,omitempty"` // disk cache directory; empty = memory only
}

// ConcurrencyConfig configures batch LLM work.
type ConcurrencyConfig struct {
	AnalysisWorkers int `yaml:"analysis_workers"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:          "", // disabled by default
			Timeout:           30,
			MaxTokens:         2000,
			RequestsPerSecond: 1,
		},
		Recommend: RecommendConfig{
			MaxResults: 5,
			CacheTTL:   30 * time.Minute,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Concurrency: ConcurrencyConfig{
			AnalysisWorkers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
