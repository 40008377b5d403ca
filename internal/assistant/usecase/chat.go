package usecase

import (
	"context"
	"errors"
	"strings"

	"companion-core/internal/assistant"
	"companion-core/internal/assistant/repository"
	"companion-core/internal/model"
)

// Chat produces a personality-shaped reply. A missing profile falls back to
// baseline personality settings instead of failing the turn.
func (uc *implUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}
	if len(input.Message) > assistant.MaxChatMessageLen {
		return assistant.ChatOutput{}, assistant.ErrMessageTooLong
	}

	profile := uc.loadProfile(ctx, input.UserID)

	reply := uc.responder.GenerateResponse(ctx, message, profile.Personality)
	return assistant.ChatOutput{Reply: reply}, nil
}

// loadProfile returns the user's profile, or a zero-value profile when the
// user is unknown or no id was supplied.
func (uc *implUseCase) loadProfile(ctx context.Context, userID string) model.UserProfile {
	if strings.TrimSpace(userID) == "" {
		return model.UserProfile{}
	}

	profile, err := uc.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			uc.l.Warnf(ctx, "loadProfile: lookup for %s failed: %v", userID, err)
		}
		return model.UserProfile{ID: userID}
	}
	return profile
}
