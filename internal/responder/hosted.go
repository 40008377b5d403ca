package responder

import (
	"context"
	"strings"

	"companion-core/pkg/log"
	"companion-core/pkg/openai"
)

// HostedProvider asks the hosted chat-completion service once per call.
// It is only placed in the provider chain when a real API key is configured.
type HostedProvider struct {
	client openai.IOpenAI
	l      log.Logger
}

var _ Provider = (*HostedProvider)(nil)

// NewHostedProvider wraps an OpenAI client as a Provider.
func NewHostedProvider(client openai.IOpenAI, l log.Logger) *HostedProvider {
	return &HostedProvider{client: client, l: l}
}

// TryReply sends one chat-completion request and returns the trimmed first
// choice when it is long enough to be a real answer.
func (p *HostedProvider) TryReply(ctx context.Context, message, personaPrompt string) (string, error) {
	system := GenericAssistantInstruction
	if personaPrompt != "" {
		system = personaPrompt + "\n\n" + GenericAssistantInstruction
	}

	resp, err := p.client.ChatCompletion(ctx, &openai.Request{
		Messages: []openai.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: message},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoReply
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if len(answer) <= MinReplyLen {
		return "", ErrNoReply
	}
	return answer, nil
}

// Name returns the provider name for logging.
func (p *HostedProvider) Name() string {
	return ProviderNameHosted
}

// HostedKeyUsable reports whether the configured key is real, as opposed to
// missing or the scaffold placeholder shipped in sample configs.
func HostedKeyUsable(apiKey string) bool {
	return apiKey != "" && apiKey != APIKeyPlaceholder
}
