package hfhub

import "context"

// IHub is the interface for the hosted inference-hub service.
type IHub interface {
	// Query sends one inference request to the given model, choosing the
	// request shape by model family, and returns the normalized answer text.
	Query(ctx context.Context, model, prompt, text string) (string, error)

	// Whoami performs the lightweight identity check used to validate the
	// configured token.
	Whoami(ctx context.Context) (*WhoamiResponse, error)
}
