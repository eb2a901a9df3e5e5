package llm

import (
	"fmt"
	"strings"
)

// Config holds configuration for a completion client.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string // overridden in tests
}

// NewClient creates a completion client based on the provided configuration.
// An empty API key returns (nil, nil): a missing credential means the
// AI-assisted path is simply never attempted, not a startup failure.
func NewClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	switch strings.ToLower(cfg.Provider) {
	case "", "anthropic":
		return newAnthropicClient(cfg)
	case "openai":
		return newOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
