package ollama

import "context"

// IOllama is the interface for the local Ollama text-generation service.
type IOllama interface {
	// Generate sends one non-streaming generation request.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// BaseURL returns the endpoint this client talks to.
	BaseURL() string
}
