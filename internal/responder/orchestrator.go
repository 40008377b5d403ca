package responder

import (
	"context"

	"companion-core/pkg/personality"
)

// GenerateResponse returns a natural-language reply to message. Providers
// are tried strictly in order and strictly sequentially; the first usable
// answer wins. All provider failures are recovered locally, so the result is
// always a non-empty string.
//
// No deadline is imposed here beyond the transport timeouts of the
// underlying clients; callers needing bounded latency should wrap the call
// in a context deadline of their own.
func (o *Orchestrator) GenerateResponse(ctx context.Context, message string, settings personality.Settings) string {
	settings = settings.Normalized()
	personaPrompt := personality.CombinedPrompt(settings.IntensityLevel, settings.StyleType)

	for _, provider := range o.providers {
		answer, err := provider.TryReply(ctx, message, personaPrompt)
		if err == nil {
			o.l.Infof(ctx, "%s: provider %q answered", LogPrefixGenerate, provider.Name())
			return answer
		}
		o.l.Warnf(ctx, "%s: provider %q failed: %v", LogPrefixGenerate, provider.Name(), err)
	}

	o.l.Infof(ctx, "%s: all providers exhausted, using rule responder", LogPrefixGenerate)
	return o.rule.SmartResponse(message, settings)
}
