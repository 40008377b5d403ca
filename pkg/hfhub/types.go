package hfhub

import (
	"errors"
	"net/http"
)

// Config holds inference-hub client configuration.
type Config struct {
	Token        string
	InferenceURL string
	APIURL       string
	HTTPClient   *http.Client
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.Token == "" {
		return errors.New("hfhub: Token is required")
	}
	if c.InferenceURL == "" {
		c.InferenceURL = DefaultInferenceURL
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// ErrModelLoading indicates the model is still warming up on the hub side;
// callers should move on to the next candidate rather than fail.
var ErrModelLoading = errors.New("hfhub: model is loading")

// ErrNoGeneratedText indicates the response carried no usable answer.
var ErrNoGeneratedText = errors.New("hfhub: no generated text in response")

// conversationalRequest is the request shape for dialogue-style models.
type conversationalRequest struct {
	Inputs conversationalInputs `json:"inputs"`
}

type conversationalInputs struct {
	PastUserInputs     []string `json:"past_user_inputs"`
	GeneratedResponses []string `json:"generated_responses"`
	Text               string   `json:"text"`
}

// textGenerationRequest is the request shape for plain generation models.
type textGenerationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters textGenerationParams `json:"parameters"`
}

type textGenerationParams struct {
	MaxNewTokens   int     `json:"max_new_tokens,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`
	ReturnFullText bool    `json:"return_full_text"`
}

// conversationalResponse is the response shape for dialogue-style models.
type conversationalResponse struct {
	GeneratedText string `json:"generated_text"`
}

// textGenerationResponse entries come back as a JSON array.
type textGenerationResponse struct {
	GeneratedText string `json:"generated_text"`
}

// loadingResponse is returned while a model is warming up.
type loadingResponse struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// WhoamiResponse is the identity-check response body.
type WhoamiResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
