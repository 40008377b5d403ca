package responder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"companion-core/pkg/log"
	"companion-core/pkg/personality"
)

// stubProvider is a test implementation of the Provider interface.
type stubProvider struct {
	name      string
	reply     string
	err       error
	callCount int
}

func (s *stubProvider) TryReply(ctx context.Context, message, personaPrompt string) (string, error) {
	s.callCount++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubProvider) Name() string { return s.name }

func TestGenerateResponse_FirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "first", reply: "from first"}
	second := &stubProvider{name: "second", reply: "from second"}

	o := NewFromProviders([]Provider{first, second}, NewRuleResponder(), log.InitNop())

	got := o.GenerateResponse(context.Background(), "hello", personality.Settings{})
	if got != "from first" {
		t.Errorf("GenerateResponse = %q, want %q", got, "from first")
	}
	if second.callCount != 0 {
		t.Errorf("second provider was called %d times, want 0", second.callCount)
	}
}

func TestGenerateResponse_FallsThroughFailedProviders(t *testing.T) {
	first := &stubProvider{name: "first", err: ErrNoReply}
	second := &stubProvider{name: "second", err: errors.New("boom")}
	third := &stubProvider{name: "third", reply: "from third"}

	o := NewFromProviders([]Provider{first, second, third}, NewRuleResponder(), log.InitNop())

	got := o.GenerateResponse(context.Background(), "hello", personality.Settings{})
	if got != "from third" {
		t.Errorf("GenerateResponse = %q, want %q", got, "from third")
	}
	if first.callCount != 1 || second.callCount != 1 {
		t.Errorf("providers called %d/%d times, want 1/1", first.callCount, second.callCount)
	}
}

func TestGenerateResponse_AllProvidersFail_UsesRuleResponder(t *testing.T) {
	failing := &stubProvider{name: "failing", err: ErrNoReply}
	o := NewFromProviders([]Provider{failing}, NewRuleResponder(), log.InitNop())

	greetings := categories[0]
	if greetings.name != "greeting" {
		t.Fatalf("expected first category to be greeting, got %q", greetings.name)
	}

	settings := personality.Settings{IntensityLevel: 5, StyleType: 0}
	for i := 0; i < 20; i++ {
		got := o.GenerateResponse(context.Background(), "hi", settings)
		if got == "" {
			t.Fatal("GenerateResponse returned empty string")
		}

		matched := false
		for _, tmpl := range greetings.templates {
			if strings.HasPrefix(got, tmpl) || got == tmpl {
				matched = true
				break
			}
		}
		if !matched {
			t.Fatalf("reply %q is not derived from any greeting template", got)
		}
	}
}

func TestGenerateResponse_NeverEmpty(t *testing.T) {
	o := NewFromProviders(nil, NewRuleResponder(), log.InitNop())

	inputs := []string{"", "hi", "help me out", "thanks", "bye", "what is the meaning of life"}
	for _, msg := range inputs {
		for intensity := 0; intensity <= 9; intensity++ {
			for style := 0; style <= 9; style++ {
				got := o.GenerateResponse(context.Background(), msg,
					personality.Settings{IntensityLevel: intensity, StyleType: style})
				if got == "" {
					t.Fatalf("empty reply for msg=%q intensity=%d style=%d", msg, intensity, style)
				}
			}
		}
	}
}

func TestHostedKeyUsable(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{APIKeyPlaceholder, false},
		{"sk-real-key", true},
	}
	for _, tc := range tests {
		if got := HostedKeyUsable(tc.key); got != tc.want {
			t.Errorf("HostedKeyUsable(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}
