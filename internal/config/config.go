package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Provider names accepted in SUMMARISE_PROVIDER.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

type Config struct {
	// Model provider
	Provider        string `env:"SUMMARISE_PROVIDER" envDefault:"anthropic"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string `env:"SUMMARISE_ANTHROPIC_MODEL" envDefault:"claude-sonnet-4-5-20250929"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIModel     string `env:"SUMMARISE_OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Chunking: maximum chunk size in bytes submitted per model call.
	MaxLength int `env:"SUMMARISE_MAX_LENGTH" envDefault:"8000"`

	// Model response budget in tokens.
	MaxTokens int `env:"SUMMARISE_MAX_TOKENS" envDefault:"1024"`

	// Web page fetch
	FetchTimeout time.Duration `env:"SUMMARISE_FETCH_TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from the environment. Flags may override fields
// afterwards; Validate runs on the final value.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unknown provider %q (want %s or %s)", c.Provider, ProviderAnthropic, ProviderOpenAI)
	}
	if c.MaxLength < 1 {
		return fmt.Errorf("max length must be at least 1, got %d", c.MaxLength)
	}
	return nil
}

// Model returns the model id for the configured provider.
func (c Config) Model() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIModel
	}
	return c.AnthropicModel
}

// SetModel overrides the model id for the configured provider.
func (c *Config) SetModel(model string) {
	if c.Provider == ProviderOpenAI {
		c.OpenAIModel = model
		return
	}
	c.AnthropicModel = model
}
