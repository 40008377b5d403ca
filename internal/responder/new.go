package responder

import (
	"context"

	"companion-core/pkg/hfhub"
	"companion-core/pkg/log"
	"companion-core/pkg/openai"
)

// Orchestrator produces a reply by trying providers in fixed priority order
// (local, hosted, hub) and falling back to the rule responder. Every call is
// total: the rule responder cannot fail.
type Orchestrator struct {
	providers []Provider
	rule      *RuleResponder
	l         log.Logger
}

// New assembles the provider chain from config. Providers whose credentials
// are absent (or the scaffold placeholder) are left out of the chain
// entirely; the rule responder is always present.
func New(cfg Config, l log.Logger) *Orchestrator {
	ctx := context.Background()
	providers := make([]Provider, 0, 3)

	providers = append(providers, NewLocalProvider(cfg.Local, l))

	if HostedKeyUsable(cfg.OpenAIAPIKey) {
		client, err := openai.New(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		})
		if err != nil {
			l.Warnf(ctx, "hosted provider unavailable: %v", err)
		} else {
			providers = append(providers, NewHostedProvider(client, l))
		}
	} else {
		l.Infof(ctx, "hosted provider skipped: no usable API key configured")
	}

	if cfg.HubToken != "" {
		client, err := hfhub.New(hfhub.Config{Token: cfg.HubToken})
		if err != nil {
			l.Warnf(ctx, "hub provider unavailable: %v", err)
		} else {
			providers = append(providers, NewHubProvider(client, cfg.HubModels, l))
		}
	} else {
		l.Infof(ctx, "hub provider skipped: no token configured")
	}

	return &Orchestrator{
		providers: providers,
		rule:      NewRuleResponder(),
		l:         l,
	}
}

// NewFromProviders assembles an orchestrator over an explicit provider list.
// Intended for tests and embedding.
func NewFromProviders(providers []Provider, rule *RuleResponder, l log.Logger) *Orchestrator {
	return &Orchestrator{providers: providers, rule: rule, l: l}
}
