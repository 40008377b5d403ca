package usecase

import (
	"context"

	"companion-core/internal/assistant/repository"
	"companion-core/internal/extractor"
	"companion-core/internal/model"
	"companion-core/pkg/gcalendar"
	pkgLog "companion-core/pkg/log"
	"companion-core/pkg/personality"
)

// Responder produces a conversational reply; satisfied by
// responder.Orchestrator.
type Responder interface {
	GenerateResponse(ctx context.Context, message string, settings personality.Settings) string
}

// Extractor turns free text into task records; satisfied by
// extractor.Extractor.
type Extractor interface {
	Extract(ctx context.Context, input string, profile *model.UserProfile, hints *extractor.Hints) extractor.Result
}

// Calendar creates calendar events; satisfied by gcalendar.Client. A nil
// Calendar disables sync.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l           pkgLog.Logger
	responder   Responder
	extractor   Extractor
	profileRepo repository.ProfileRepository
	taskRepo    repository.TaskRepository
	calendar    Calendar
	timezone    string
}

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	responder Responder,
	ext Extractor,
	profileRepo repository.ProfileRepository,
	taskRepo repository.TaskRepository,
	calendar Calendar,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:           l,
		responder:   responder,
		extractor:   ext,
		profileRepo: profileRepo,
		taskRepo:    taskRepo,
		calendar:    calendar,
		timezone:    timezone,
	}
}
