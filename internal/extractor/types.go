package extractor

import (
	"context"
	"time"

	"companion-core/pkg/personality"
)

// Responder produces a free-text reply for a prompt; satisfied by
// responder.Orchestrator. It is total: the reply is never empty.
type Responder interface {
	GenerateResponse(ctx context.Context, message string, settings personality.Settings) string
}

// ExtractedTask is one structured task. After validation every field is
// present and valid; callers never see a malformed date, time, priority or
// category.
type ExtractedTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

// Result is the outcome of one extraction call. Confidence is a heuristic
// score in [0.1, 1.0], not a probability.
type Result struct {
	Tasks            []ExtractedTask `json:"tasks"`
	OriginalInput    string          `json:"original_input"`
	Confidence       float64         `json:"confidence"`
	ProcessingTimeMs int64           `json:"processing_time_ms"`
}

// Hints carries optional caller context for one extraction.
type Hints struct {
	CurrentTime   *time.Time
	ExistingTasks []string
}
