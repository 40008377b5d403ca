package responder

import (
	"context"
	"fmt"
	"strings"

	"companion-core/pkg/log"
	"companion-core/pkg/ollama"
)

// LocalProvider tries an ordered list of local text-generation endpoints.
// Each endpoint is asked once with the primary model; a 404 (model not
// pulled) earns one retry on the same endpoint with the secondary model.
type LocalProvider struct {
	clients        []ollama.IOllama
	primaryModel   string
	secondaryModel string
	l              log.Logger
}

var _ Provider = (*LocalProvider)(nil)

// LocalConfig configures the local provider.
type LocalConfig struct {
	Endpoints      []string
	PrimaryModel   string
	SecondaryModel string
}

// NewLocalProvider builds a client per endpoint. Endpoints that fail client
// construction are skipped.
func NewLocalProvider(cfg LocalConfig, l log.Logger) *LocalProvider {
	clients := make([]ollama.IOllama, 0, len(cfg.Endpoints))
	for _, endpoint := range cfg.Endpoints {
		client, err := ollama.New(ollama.Config{BaseURL: endpoint})
		if err != nil {
			l.Warnf(context.Background(), "local provider: skipping endpoint %q: %v", endpoint, err)
			continue
		}
		clients = append(clients, client)
	}

	return &LocalProvider{
		clients:        clients,
		primaryModel:   cfg.PrimaryModel,
		secondaryModel: cfg.SecondaryModel,
		l:              l,
	}
}

// NewLocalProviderFromClients is the test seam for injecting fake clients.
func NewLocalProviderFromClients(clients []ollama.IOllama, primary, secondary string, l log.Logger) *LocalProvider {
	return &LocalProvider{
		clients:        clients,
		primaryModel:   primary,
		secondaryModel: secondary,
		l:              l,
	}
}

// TryReply walks the endpoint list and returns the first acceptable answer.
func (p *LocalProvider) TryReply(ctx context.Context, message, personaPrompt string) (string, error) {
	if len(p.clients) == 0 {
		return "", ErrNoReply
	}

	prompt := buildLocalPrompt(message, personaPrompt)

	for _, client := range p.clients {
		answer, err := p.generate(ctx, client, p.primaryModel, prompt)
		if err == nil {
			return answer, nil
		}

		// Model missing on this endpoint: one retry with the secondary id
		// before giving up on the endpoint.
		if ollama.IsNotFound(err) && p.secondaryModel != "" {
			p.l.Debugf(ctx, "local provider: %s missing %q, retrying with %q",
				client.BaseURL(), p.primaryModel, p.secondaryModel)
			answer, err = p.generate(ctx, client, p.secondaryModel, prompt)
			if err == nil {
				return answer, nil
			}
		}

		p.l.Debugf(ctx, "local provider: endpoint %s failed: %v", client.BaseURL(), err)
	}

	return "", ErrNoReply
}

func (p *LocalProvider) generate(ctx context.Context, client ollama.IOllama, model, prompt string) (string, error) {
	resp, err := client.Generate(ctx, &ollama.GenerateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
		Options: ollama.Options{
			Temperature: ollama.DefaultTemperature,
			NumPredict:  ollama.DefaultMaxTokens,
		},
	})
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(resp.Response)
	if len(answer) <= MinReplyLen {
		return "", ErrNoReply
	}
	return answer, nil
}

// Name returns the provider name for logging.
func (p *LocalProvider) Name() string {
	return ProviderNameLocal
}

// buildLocalPrompt folds the persona prompt into a plain completion prompt,
// since the local generation API has no separate system-message slot.
func buildLocalPrompt(message, personaPrompt string) string {
	if personaPrompt == "" {
		return fmt.Sprintf("User: %s\nAssistant:", message)
	}
	return fmt.Sprintf("%s\n\nUser: %s\nAssistant:", personaPrompt, message)
}
