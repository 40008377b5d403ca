package hfhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client implements IHub.
type Client struct {
	token        string
	inferenceURL string
	apiURL       string
	httpClient   *http.Client
}

var _ IHub = (*Client)(nil)

// New creates a new inference-hub client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		token:        cfg.Token,
		inferenceURL: cfg.InferenceURL,
		apiURL:       cfg.APIURL,
		httpClient:   cfg.HTTPClient,
	}, nil
}

// IsConversational reports whether the model takes the conversational
// request shape instead of plain text generation.
func IsConversational(model string) bool {
	lower := strings.ToLower(model)
	for _, marker := range conversationalMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Query sends one inference request to the given model and returns the
// normalized answer text. A warming-up model yields ErrModelLoading.
func (c *Client) Query(ctx context.Context, model, prompt, text string) (string, error) {
	input := text
	if prompt != "" {
		input = prompt + "\n\n" + text
	}

	var payload any
	if IsConversational(model) {
		payload = conversationalRequest{
			Inputs: conversationalInputs{
				PastUserInputs:     []string{},
				GeneratedResponses: []string{},
				Text:               input,
			},
		}
	} else {
		payload = textGenerationRequest{
			Inputs: input,
			Parameters: textGenerationParams{
				MaxNewTokens:   150,
				Temperature:    0.7,
				ReturnFullText: false,
			},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("hfhub: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.inferenceURL+"/"+model, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("hfhub: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("hfhub: API call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("hfhub: failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusServiceUnavailable {
		return "", ErrModelLoading
	}
	if resp.StatusCode != http.StatusOK {
		var loading loadingResponse
		if json.Unmarshal(raw, &loading) == nil &&
			strings.Contains(strings.ToLower(loading.Error), "loading") {
			return "", ErrModelLoading
		}
		return "", fmt.Errorf("hfhub: API error %d: %s", resp.StatusCode, string(raw))
	}

	return extractGeneratedText(raw)
}

// extractGeneratedText normalizes the two response shapes the hub returns:
// a single object for conversational models, an array for text generation.
func extractGeneratedText(raw []byte) (string, error) {
	var single conversationalResponse
	if err := json.Unmarshal(raw, &single); err == nil && single.GeneratedText != "" {
		return single.GeneratedText, nil
	}

	var many []textGenerationResponse
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 && many[0].GeneratedText != "" {
		return many[0].GeneratedText, nil
	}

	return "", ErrNoGeneratedText
}

// Whoami calls the identity-check endpoint to validate the token.
func (c *Client) Whoami(ctx context.Context) (*WhoamiResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.apiURL+"/whoami-v2", nil)
	if err != nil {
		return nil, fmt.Errorf("hfhub: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("hfhub: identity check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("hfhub: identity check error %d: %s", resp.StatusCode, string(raw))
	}

	var result WhoamiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("hfhub: failed to decode identity response: %w", err)
	}

	return &result, nil
}
