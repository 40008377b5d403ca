package usecase

import (
	"context"
	"errors"
	"strings"

	"companion-core/internal/assistant"
	"companion-core/internal/assistant/repository"
)

// SaveProfile creates or replaces a user profile.
func (uc *implUseCase) SaveProfile(ctx context.Context, input assistant.SaveProfileInput) (assistant.SaveProfileOutput, error) {
	profile, err := uc.profileRepo.SaveProfile(ctx, repository.SaveProfileOptions{
		ID:          input.UserID,
		Name:        input.Name,
		Personality: input.Personality,
	})
	if err != nil {
		return assistant.SaveProfileOutput{}, err
	}
	return assistant.SaveProfileOutput{Profile: profile}, nil
}

// GetProfile returns a user profile by id.
func (uc *implUseCase) GetProfile(ctx context.Context, userID string) (assistant.ProfileOutput, error) {
	if strings.TrimSpace(userID) == "" {
		return assistant.ProfileOutput{}, assistant.ErrEmptyUserID
	}

	profile, err := uc.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return assistant.ProfileOutput{}, assistant.ErrProfileNotFound
		}
		return assistant.ProfileOutput{}, err
	}
	return assistant.ProfileOutput{Profile: profile}, nil
}

// ListTasks returns the user's stored tasks, newest first.
func (uc *implUseCase) ListTasks(ctx context.Context, userID string) (assistant.ListTasksOutput, error) {
	if strings.TrimSpace(userID) == "" {
		return assistant.ListTasksOutput{}, assistant.ErrEmptyUserID
	}

	tasks, err := uc.taskRepo.ListTasks(ctx, repository.ListTasksOptions{UserID: userID})
	if err != nil {
		return assistant.ListTasksOutput{}, err
	}
	return assistant.ListTasksOutput{Tasks: tasks, Count: len(tasks)}, nil
}
