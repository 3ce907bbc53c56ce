package model

import "time"

// Config is the complete runtime configuration, assembled from defaults,
// the config file, environment variables and CLI flags.
type Config struct {
	LLM          LLMConfig          `yaml:"llm"`
	Cache        CacheConfig        `yaml:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting"`
	Output       OutputConfig       `yaml:"output"`
}

// LLMConfig configures the extraction provider.
type LLMConfig struct {
	Provider  string `yaml:"provider"`   // gemini, openai, ollama
	Model     string `yaml:"model"`      // provider-specific model name
	APIKey    string `yaml:"-"`          // from environment, never persisted
	BaseURL   string `yaml:"base_url"`   // custom endpoint (Ollama)
	Timeout   int    `yaml:"timeout"`    // seconds per API call
	MaxTokens int    `yaml:"max_tokens"` // response token cap
}

// CacheConfig configures the extraction cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"` // disk layer location ("" = memory only)
	TTL     time.Duration `yaml:"ttl"`
}

// ConcurrencyConfig configures batch parallelism.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitingConfig throttles calls to the extraction API.
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	XLSX    bool   `yaml:"xlsx"` // also write a batch summary workbook
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults. The gemini provider matches
// the service the extraction prompt was written for.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:  "gemini",
			Model:     "gemini-2.5-flash",
			Timeout:   60,
			MaxTokens: 2048,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2,
			BurstSize:         4,
		},
		Output: OutputConfig{
			Dir: "./claimtriage-results",
		},
	}
}
