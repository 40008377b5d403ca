package usecase

import (
	"context"
	"strings"
	"time"

	"companion-core/internal/assistant"
	"companion-core/internal/assistant/repository"
	"companion-core/internal/extractor"
	"companion-core/internal/model"
	"companion-core/pkg/gcalendar"
)

// calendarEventMinutes is the fixed duration of a synced event.
const calendarEventMinutes = 60

// ExtractTasks turns free text into stored task records and optionally
// mirrors each one into Google Calendar.
func (uc *implUseCase) ExtractTasks(ctx context.Context, input assistant.ExtractInput) (assistant.ExtractOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.ExtractOutput{}, assistant.ErrEmptyInput
	}
	if len(input.Text) > assistant.MaxExtractInputLen {
		return assistant.ExtractOutput{}, assistant.ErrInputTooLong
	}

	profile := uc.loadProfile(ctx, input.UserID)

	var profilePtr *model.UserProfile
	if profile.ID != "" {
		profilePtr = &profile
	}

	result := uc.extractor.Extract(ctx, text, profilePtr, &extractor.Hints{
		ExistingTasks: input.ExistingTasks,
	})

	uc.l.Infof(ctx, "ExtractTasks: user=%s tasks=%d confidence=%.2f", input.UserID, len(result.Tasks), result.Confidence)

	tasks := make([]model.Task, 0, len(result.Tasks))
	for _, et := range result.Tasks {
		task := model.Task{
			Title:       et.Title,
			Description: et.Description,
			Date:        et.Date,
			Time:        et.Time,
			Priority:    et.Priority,
			Category:    et.Category,
		}
		if input.ScheduleSync {
			task.CalendarLink = uc.tryCreateCalendarEvent(ctx, task)
		}
		tasks = append(tasks, task)
	}

	if strings.TrimSpace(input.UserID) != "" {
		stored, err := uc.taskRepo.SaveTasks(ctx, repository.SaveTasksOptions{
			UserID: input.UserID,
			Tasks:  tasks,
		})
		if err != nil {
			uc.l.Errorf(ctx, "ExtractTasks: failed to store tasks for %s: %v", input.UserID, err)
		} else {
			tasks = stored
		}
	}

	return assistant.ExtractOutput{
		Tasks:            tasks,
		Confidence:       result.Confidence,
		ProcessingTimeMs: result.ProcessingTimeMs,
	}, nil
}

// tryCreateCalendarEvent attempts to create a Google Calendar event for the
// task. Returns the event HTML link, or empty string on failure (graceful
// degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil {
		return ""
	}

	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", t.Date+" "+t.Time, loc)
	if err != nil {
		uc.l.Warnf(ctx, "ExtractTasks: unschedulable task %q (%s %s): %v", t.Title, t.Date, t.Time, err)
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  "primary",
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     start.Add(calendarEventMinutes * time.Minute),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "ExtractTasks: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	return event.HtmlLink
}
