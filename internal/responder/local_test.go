package responder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"companion-core/pkg/log"
	"companion-core/pkg/ollama"
)

func TestLocalProvider_ModelFallbackOn404(t *testing.T) {
	var requestedModels []string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ollama.GenerateRequest
		json.NewDecoder(r.Body).Decode(&req)
		requestedModels = append(requestedModels, req.Model)

		if req.Model == "primary-model" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"model \"primary-model\" not found"}`))
			return
		}
		json.NewEncoder(w).Encode(ollama.GenerateResponse{Response: "secondary answer", Done: true})
	}))
	defer ts.Close()

	p := NewLocalProvider(LocalConfig{
		Endpoints:      []string{ts.URL},
		PrimaryModel:   "primary-model",
		SecondaryModel: "secondary-model",
	}, log.InitNop())

	got, err := p.TryReply(context.Background(), "hello", "persona")
	if err != nil {
		t.Fatalf("TryReply: %v", err)
	}
	if got != "secondary answer" {
		t.Errorf("TryReply = %q, want %q", got, "secondary answer")
	}
	if len(requestedModels) != 2 || requestedModels[0] != "primary-model" || requestedModels[1] != "secondary-model" {
		t.Errorf("requested models = %v, want [primary-model secondary-model]", requestedModels)
	}
}

func TestLocalProvider_AdvancesPastBrokenEndpoint(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollama.GenerateResponse{Response: "healthy answer", Done: true})
	}))
	defer healthy.Close()

	p := NewLocalProvider(LocalConfig{
		Endpoints:    []string{broken.URL, healthy.URL},
		PrimaryModel: "llama3.2",
	}, log.InitNop())

	got, err := p.TryReply(context.Background(), "hello", "")
	if err != nil {
		t.Fatalf("TryReply: %v", err)
	}
	if got != "healthy answer" {
		t.Errorf("TryReply = %q, want %q", got, "healthy answer")
	}
}

func TestLocalProvider_TooShortAnswerRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollama.GenerateResponse{Response: " k ", Done: true})
	}))
	defer ts.Close()

	p := NewLocalProvider(LocalConfig{
		Endpoints:    []string{ts.URL},
		PrimaryModel: "llama3.2",
	}, log.InitNop())

	if _, err := p.TryReply(context.Background(), "hello", ""); !errors.Is(err, ErrNoReply) {
		t.Errorf("err = %v, want ErrNoReply", err)
	}
}

func TestLocalProvider_NoEndpoints(t *testing.T) {
	p := NewLocalProvider(LocalConfig{}, log.InitNop())

	if _, err := p.TryReply(context.Background(), "hello", ""); !errors.Is(err, ErrNoReply) {
		t.Errorf("err = %v, want ErrNoReply", err)
	}
}
