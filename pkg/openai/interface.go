package openai

import "context"

// IOpenAI is the interface for the hosted chat-completion service.
type IOpenAI interface {
	// ChatCompletion sends a chat-completion request and returns the response.
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used.
	Model() string
}
