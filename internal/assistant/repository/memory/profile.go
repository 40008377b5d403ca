package memory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"companion-core/internal/assistant/repository"
	"companion-core/internal/model"
)

func newUUID() string { return uuid.NewString() }

// SaveProfile creates or replaces a profile. An empty ID assigns a new one;
// replacing keeps the original CreatedAt.
func (s *Store) SaveProfile(ctx context.Context, opt repository.SaveProfileOptions) (model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.TrimSpace(opt.ID)
	createdAt := time.Now()
	if id == "" {
		id = s.newID()
	} else if existing, ok := s.profiles.Get(id); ok {
		createdAt = existing.CreatedAt
	}

	profile := model.UserProfile{
		ID:          id,
		Name:        strings.TrimSpace(opt.Name),
		Personality: opt.Personality.Normalized(),
		CreatedAt:   createdAt,
	}

	s.profiles.Add(id, profile)
	s.l.Debugf(ctx, "memory: saved profile %s", id)

	return profile, nil
}

// GetProfile returns a profile by id.
func (s *Store) GetProfile(ctx context.Context, id string) (model.UserProfile, error) {
	if strings.TrimSpace(id) == "" {
		return model.UserProfile{}, repository.ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles.Get(id)
	if !ok {
		return model.UserProfile{}, repository.ErrProfileNotFound
	}
	return profile, nil
}
