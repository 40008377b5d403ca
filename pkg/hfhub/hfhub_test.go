package hfhub_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"companion-core/pkg/hfhub"
)

func TestIsConversational(t *testing.T) {
	tests := []struct {
		model string
		want  bool
	}{
		{"microsoft/DialoGPT-large", true},
		{"facebook/blenderbot-400M-distill", true},
		{"google/flan-t5-large", false},
		{"gpt2", false},
	}

	for _, tc := range tests {
		if got := hfhub.IsConversational(tc.model); got != tc.want {
			t.Errorf("IsConversational(%q) = %v, want %v", tc.model, got, tc.want)
		}
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *hfhub.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := hfhub.New(hfhub.Config{
		Token:        "test-token",
		InferenceURL: ts.URL + "/models",
		APIURL:       ts.URL + "/api",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestClient_Query_ConversationalShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/microsoft/DialoGPT-large") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req struct {
			Inputs struct {
				Text string `json:"text"`
			} `json:"inputs"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Inputs.Text == "" {
			t.Errorf("expected conversational request shape, decode err=%v", err)
		}

		json.NewEncoder(w).Encode(map[string]string{"generated_text": "hub answer"})
	})

	got, err := client.Query(context.Background(), "microsoft/DialoGPT-large", "persona", "hello")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if got != "hub answer" {
		t.Errorf("Query = %q, want %q", got, "hub answer")
	}
}

func TestClient_Query_TextGenerationShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Inputs string `json:"inputs"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Inputs == "" {
			t.Errorf("expected text-generation request shape, decode err=%v", err)
		}

		json.NewEncoder(w).Encode([]map[string]string{{"generated_text": "flan answer"}})
	})

	got, err := client.Query(context.Background(), "google/flan-t5-large", "persona", "hello")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if got != "flan answer" {
		t.Errorf("Query = %q, want %q", got, "flan answer")
	}
}

func TestClient_Query_ModelLoading(t *testing.T) {
	t.Run("503 status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]any{"error": "Model is currently loading", "estimated_time": 20.0})
		})

		_, err := client.Query(context.Background(), "google/flan-t5-large", "", "hi")
		if !errors.Is(err, hfhub.ErrModelLoading) {
			t.Errorf("err = %v, want ErrModelLoading", err)
		}
	})

	t.Run("loading error body on other status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]any{"error": "Model google/flan-t5-large is loading"})
		})

		_, err := client.Query(context.Background(), "google/flan-t5-large", "", "hi")
		if !errors.Is(err, hfhub.ErrModelLoading) {
			t.Errorf("err = %v, want ErrModelLoading", err)
		}
	})
}

func TestClient_Query_NoGeneratedText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	})

	_, err := client.Query(context.Background(), "google/flan-t5-large", "", "hi")
	if !errors.Is(err, hfhub.ErrNoGeneratedText) {
		t.Errorf("err = %v, want ErrNoGeneratedText", err)
	}
}

func TestClient_Whoami(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/whoami-v2" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(hfhub.WhoamiResponse{Name: "tester", Type: "user"})
	})

	who, err := client.Whoami(context.Background())
	if err != nil {
		t.Fatalf("Whoami: %v", err)
	}
	if who.Name != "tester" {
		t.Errorf("Name = %q, want %q", who.Name, "tester")
	}
}

func TestClient_Whoami_BadToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	})

	if _, err := client.Whoami(context.Background()); err == nil {
		t.Fatal("expected error for bad token, got nil")
	}
}
