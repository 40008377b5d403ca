package responder

// Provider names, used for logging and priority documentation.
const (
	ProviderNameLocal  = "local"
	ProviderNameHosted = "hosted"
	ProviderNameHub    = "hub"
)

// GenericAssistantInstruction is appended to the persona prompt for the
// hosted chat provider (and used alone when no persona prompt is set).
const GenericAssistantInstruction = "You are a helpful personal assistant inside a task-planning app. Keep replies short, concrete and conversational."

// APIKeyPlaceholder is the scaffold value shipped in sample configs; a hosted
// key equal to it is treated the same as no key at all.
const APIKeyPlaceholder = "your-openai-api-key-here"

// Reply acceptance bounds. A trimmed reply must be longer than MinReplyLen;
// the hub adapter additionally rejects replies of MaxHubReplyLen or more,
// which guards against degenerate echo loops from small dialogue models.
const (
	MinReplyLen    = 1
	MaxHubReplyLen = 300
)

// Log prefixes.
const (
	LogPrefixGenerate = "internal.responder.GenerateResponse"
)

// credential health states for the hub provider, set at most once per
// provider instance.
const (
	healthUntested int32 = iota
	healthWorking
	healthFailing
)
