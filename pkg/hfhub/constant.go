package hfhub

import "time"

const (
	// DefaultInferenceURL is the base URL for per-model inference endpoints.
	DefaultInferenceURL = "https://api-inference.huggingface.co/models"

	// DefaultAPIURL is the base URL for account/identity endpoints.
	DefaultAPIURL = "https://huggingface.co/api"

	// DefaultTimeout bounds a single inference call.
	DefaultTimeout = 60 * time.Second
)

// DefaultModels is the ordered candidate list tried by the orchestration
// layer. Dialogue-style models first, then a plain text-generation model.
var DefaultModels = []string{
	"microsoft/DialoGPT-large",
	"facebook/blenderbot-400M-distill",
	"google/flan-t5-large",
}

// conversationalMarkers identify model families that take the
// conversational request shape rather than plain text generation.
var conversationalMarkers = []string{
	"dialogpt",
	"blenderbot",
}
