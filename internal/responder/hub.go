package responder

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"companion-core/pkg/hfhub"
	"companion-core/pkg/log"
)

// HubProvider walks a fixed ordered list of candidate inference-hub models.
// The configured token is probed with an identity check at most once per
// provider instance; a failed probe disables the provider for its lifetime.
// Concurrent first calls may both probe; both writes agree, so no lock.
type HubProvider struct {
	client hfhub.IHub
	models []string
	health atomic.Int32
	l      log.Logger
}

var _ Provider = (*HubProvider)(nil)

// NewHubProvider wraps an inference-hub client as a Provider.
// An empty model list falls back to the default candidates.
func NewHubProvider(client hfhub.IHub, models []string, l log.Logger) *HubProvider {
	if len(models) == 0 {
		models = hfhub.DefaultModels
	}
	return &HubProvider{client: client, models: models, l: l}
}

// TryReply probes the credential on first use, then walks the candidate
// models until one yields an acceptable answer.
func (p *HubProvider) TryReply(ctx context.Context, message, personaPrompt string) (string, error) {
	switch p.health.Load() {
	case healthUntested:
		if _, err := p.client.Whoami(ctx); err != nil {
			p.health.Store(healthFailing)
			p.l.Warnf(ctx, "hub provider: credential probe failed, disabling: %v", err)
			return "", ErrNoReply
		}
		p.health.Store(healthWorking)
		p.l.Infof(ctx, "hub provider: credential probe succeeded")
	case healthFailing:
		return "", ErrNoReply
	}

	for _, model := range p.models {
		answer, err := p.client.Query(ctx, model, personaPrompt, message)
		if err != nil {
			if errors.Is(err, hfhub.ErrModelLoading) {
				p.l.Debugf(ctx, "hub provider: model %q still loading, trying next", model)
				continue
			}
			p.l.Debugf(ctx, "hub provider: model %q failed: %v", model, err)
			continue
		}

		answer = strings.TrimSpace(answer)
		if len(answer) > MinReplyLen && len(answer) < MaxHubReplyLen {
			return answer, nil
		}
	}

	return "", ErrNoReply
}

// Name returns the provider name for logging.
func (p *HubProvider) Name() string {
	return ProviderNameHub
}
