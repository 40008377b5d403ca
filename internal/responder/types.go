package responder

// Config holds everything needed to assemble the provider chain.
// Endpoints and credentials are operator-supplied; a missing credential
// simply leaves its provider out of the chain.
type Config struct {
	Local LocalConfig

	// Hosted chat-completion service.
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Inference hub.
	HubToken  string
	HubModels []string
}
