// Package llm is the boundary to the upstream text-generation service. The
// rest of the system treats a provider as a black box: a composed prompt and
// recent exchange history go in, a text string (possibly containing embedded
// JSON) or an explicit failure comes out. Fallback behavior on failure is the
// caller's responsibility.
package llm

import (
	"context"

	"github.com/carmitra/carmitra/internal/model"
)

// Provider defines the interface for generation providers.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Complete generates a completion for the request.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// IsAvailable checks if the provider is properly configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// Exchange is one prior request/response pair of the conversation.
type Exchange struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// CompletionRequest contains the input for a completion call.
type CompletionRequest struct {
	// System sets the assistant persona and output contract.
	System string

	// Prompt is the fully composed user prompt.
	Prompt string

	// History is the recent exchange history. Callers truncate it with
	// TruncateHistory before invocation.
	History []Exchange

	// Model overrides the configured model when non-empty.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int

	// Temperature controls sampling; zero means the provider default.
	Temperature float32
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai" or "" (disabled).
	Provider string

	// Model name (provider-specific).
	Model string

	// APIKey for the hosted API.
	APIKey string

	// BaseURL for custom endpoints.
	BaseURL string

	// Timeout for API requests, in seconds.
	Timeout int

	// MaxTokens for response generation.
	MaxTokens int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "", // disabled by default
		Timeout:   30,
		MaxTokens: 2000,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config.
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:  c.Provider,
		Model:     c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		MaxTokens: c.MaxTokens,
	}
}

// MaxHistoryExchanges caps how much conversation context travels with each
// request.
const MaxHistoryExchanges = 10

// TruncateHistory returns the most recent MaxHistoryExchanges exchanges.
func TruncateHistory(history []Exchange) []Exchange {
	if len(history) <= MaxHistoryExchanges {
		return history
	}
	return history[len(history)-MaxHistoryExchanges:]
}
