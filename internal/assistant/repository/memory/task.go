package memory

import (
	"context"
	"strings"
	"time"

	"companion-core/internal/assistant/repository"
	"companion-core/internal/model"
)

// SaveTasks appends one extraction's worth of tasks to the user's list,
// assigning store ids and timestamps. The stored copy is returned.
func (s *Store) SaveTasks(ctx context.Context, opt repository.SaveTasksOptions) ([]model.Task, error) {
	userID := strings.TrimSpace(opt.UserID)
	if userID == "" {
		return nil, repository.ErrEmptyUserID
	}
	if len(opt.Tasks) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stored := make([]model.Task, 0, len(opt.Tasks))
	for _, t := range opt.Tasks {
		t.ID = s.newID()
		t.UserID = userID
		t.CreatedAt = now
		stored = append(stored, t)
	}

	existing, _ := s.tasks.Get(userID)
	s.tasks.Add(userID, append(existing, stored...))

	s.l.Debugf(ctx, "memory: saved %d tasks for user %s", len(stored), userID)
	return stored, nil
}

// ListTasks returns the user's tasks, newest first. An unknown user has an
// empty list, not an error.
func (s *Store) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	userID := strings.TrimSpace(opt.UserID)
	if userID == "" {
		return nil, repository.ErrEmptyUserID
	}

	s.mu.Lock()
	stored, _ := s.tasks.Get(userID)
	s.mu.Unlock()

	// Stored oldest first; reverse into a fresh slice so callers cannot
	// mutate the cache entry.
	out := make([]model.Task, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}

	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}
