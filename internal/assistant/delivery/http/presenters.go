package http

import (
	"time"

	"companion-core/internal/assistant"
	"companion-core/internal/model"
	"companion-core/pkg/personality"
)

// --- Request DTOs ---

type chatReq struct {
	UserID  string `json:"user_id"`
	Message string `json:"message" binding:"required"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{
		UserID:  r.UserID,
		Message: r.Message,
	}
}

// ---

type extractReq struct {
	UserID        string   `json:"user_id"`
	Text          string   `json:"text" binding:"required"`
	ScheduleSync  bool     `json:"schedule_sync"`
	ExistingTasks []string `json:"existing_tasks"`
}

func (r extractReq) validate() error { return nil }

func (r extractReq) toInput() assistant.ExtractInput {
	return assistant.ExtractInput{
		UserID:        r.UserID,
		Text:          r.Text,
		ScheduleSync:  r.ScheduleSync,
		ExistingTasks: r.ExistingTasks,
	}
}

// ---

type saveProfileReq struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name" binding:"max=255"`
	IntensityLevel int    `json:"intensity_level"`
	StyleType      int    `json:"style_type"`
}

func (r saveProfileReq) validate() error { return nil }

func (r saveProfileReq) toInput() assistant.SaveProfileInput {
	return assistant.SaveProfileInput{
		UserID: r.UserID,
		Name:   r.Name,
		Personality: personality.Settings{
			IntensityLevel: r.IntensityLevel,
			StyleType:      r.StyleType,
		},
	}
}

// --- Response DTOs ---

type chatResp struct {
	Reply string `json:"reply"`
}

func newChatResp(out assistant.ChatOutput) chatResp {
	return chatResp{Reply: out.Reply}
}

type taskResp struct {
	ID           string    `json:"id,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Priority     string    `json:"priority"`
	Category     string    `json:"category"`
	CalendarLink string    `json:"calendar_link,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Date:         t.Date,
		Time:         t.Time,
		Priority:     t.Priority,
		Category:     t.Category,
		CalendarLink: t.CalendarLink,
		CreatedAt:    t.CreatedAt,
	}
}

type extractResp struct {
	Tasks            []taskResp `json:"tasks"`
	Confidence       float64    `json:"confidence"`
	ProcessingTimeMs int64      `json:"processing_time_ms"`
}

func newExtractResp(out assistant.ExtractOutput) extractResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return extractResp{
		Tasks:            tasks,
		Confidence:       out.Confidence,
		ProcessingTimeMs: out.ProcessingTimeMs,
	}
}

type profileResp struct {
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	IntensityLevel int       `json:"intensity_level"`
	StyleType      int       `json:"style_type"`
	CreatedAt      time.Time `json:"created_at"`
}

func newProfileResp(p model.UserProfile) profileResp {
	return profileResp{
		UserID:         p.ID,
		Name:           p.Name,
		IntensityLevel: p.Personality.IntensityLevel,
		StyleType:      p.Personality.StyleType,
		CreatedAt:      p.CreatedAt,
	}
}

type listTasksResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func newListTasksResp(out assistant.ListTasksOutput) listTasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listTasksResp{Tasks: tasks, Count: out.Count}
}
