package model

import (
	"time"

	"companion-core/pkg/personality"
)

// UserProfile is the per-user record held in the profile store. The core
// only reads the name and the two personality axes; everything else about a
// user lives outside this service.
type UserProfile struct {
	ID          string
	Name        string
	Personality personality.Settings
	CreatedAt   time.Time
}
