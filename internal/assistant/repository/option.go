package repository

import (
	"companion-core/internal/model"
	"companion-core/pkg/personality"
)

// SaveProfileOptions holds the parameters for creating or replacing a
// profile. An empty ID asks the store to assign one.
type SaveProfileOptions struct {
	ID          string
	Name        string
	Personality personality.Settings
}

// SaveTasksOptions holds the parameters for storing one extraction's worth
// of tasks. IDs are assigned by the store.
type SaveTasksOptions struct {
	UserID string
	Tasks  []model.Task
}

// ListTasksOptions holds the parameters for listing a user's tasks.
type ListTasksOptions struct {
	UserID string
	Limit  int // 0 means no limit
}
