package ollama

import "time"

const (
	// DefaultBaseURL is the standard local Ollama endpoint.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultTimeout bounds a single generation call.
	DefaultTimeout = 60 * time.Second

	// DefaultTemperature keeps replies conversational but stable.
	DefaultTemperature = 0.7

	// DefaultMaxTokens caps generation length.
	DefaultMaxTokens = 500
)
