package responder

import (
	"context"
	"errors"
)

// Provider is one text-generation backend the orchestrator may try.
// TryReply returns a usable answer or an error; any error means "advance to
// the next provider" and is never surfaced to the caller.
type Provider interface {
	TryReply(ctx context.Context, message, personaPrompt string) (string, error)

	// Name returns the provider name for logging.
	Name() string
}

// ErrNoReply indicates the provider produced no usable answer without a
// harder failure (empty content, skipped credential, exhausted candidates).
var ErrNoReply = errors.New("no usable reply")
