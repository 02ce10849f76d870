package llm

import "time"

// Config holds provider configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "openai", "compatible", "anthropic", "gemini", "mock".
	// "compatible" is any OpenAI-compatible API reached via BaseURL.
	Provider string

	// BaseURL overrides the API endpoint for OpenAI-compatible backends.
	BaseURL string

	// APIKey is the credential for the selected provider.
	APIKey string

	// Model is the model identifier sent with every request.
	Model string

	// Timeout is the maximum duration for a single request. Default: 60s.
	Timeout time.Duration
}

// DefaultTimeout applies when Config.Timeout is zero.
const DefaultTimeout = 60 * time.Second
