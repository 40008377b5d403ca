package repository

import (
	"context"

	"companion-core/internal/model"
)

// ProfileRepository is the interface for user profile storage.
type ProfileRepository interface {
	SaveProfile(ctx context.Context, opt SaveProfileOptions) (model.UserProfile, error)
	GetProfile(ctx context.Context, id string) (model.UserProfile, error)
}

// TaskRepository is the interface for extracted task storage.
type TaskRepository interface {
	SaveTasks(ctx context.Context, opt SaveTasksOptions) ([]model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}
