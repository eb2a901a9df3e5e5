package llm

import (
	"context"
)

// Client defines the interface for text-completion providers.
type Client interface {
	// Complete sends a prompt and returns the provider's raw text output.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
