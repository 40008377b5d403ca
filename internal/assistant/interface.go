package assistant

import (
	"context"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Chat produces a personality-shaped conversational reply for the user.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ExtractTasks turns free text into stored task records and optionally
	// schedules them in Google Calendar.
	ExtractTasks(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// SaveProfile creates or replaces a user profile.
	SaveProfile(ctx context.Context, input SaveProfileInput) (SaveProfileOutput, error)

	// GetProfile returns a user profile by id.
	GetProfile(ctx context.Context, userID string) (ProfileOutput, error)

	// ListTasks returns the stored tasks of a user, newest first.
	ListTasks(ctx context.Context, userID string) (ListTasksOutput, error)
}
