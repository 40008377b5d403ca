package assistant

import (
	"companion-core/internal/model"
	"companion-core/pkg/personality"
)

// Input length limits enforced before any model call.
const (
	MaxChatMessageLen  = 2000
	MaxExtractInputLen = 4000
)

// ChatInput is the input for a conversational turn.
type ChatInput struct {
	UserID  string // optional, used to load personality settings
	Message string
}

// ChatOutput is the reply for a conversational turn.
type ChatOutput struct {
	Reply string
}

// ExtractInput is the input for task extraction.
type ExtractInput struct {
	UserID        string // optional, used to load personality settings
	Text          string // natural-language task descriptions
	ScheduleSync  bool   // when true, attempt a calendar event per task
	ExistingTasks []string
}

// ExtractOutput is the result of one extraction call.
type ExtractOutput struct {
	Tasks            []model.Task
	Confidence       float64
	ProcessingTimeMs int64
}

// SaveProfileInput creates or replaces a profile.
type SaveProfileInput struct {
	UserID      string // empty means assign a new id
	Name        string
	Personality personality.Settings
}

// SaveProfileOutput returns the stored profile.
type SaveProfileOutput struct {
	Profile model.UserProfile
}

// ProfileOutput wraps a single profile read.
type ProfileOutput struct {
	Profile model.UserProfile
}

// ListTasksOutput wraps a task listing.
type ListTasksOutput struct {
	Tasks []model.Task
	Count int
}
