package model

import "time"

// Task is an extracted task persisted in the task store.
type Task struct {
	ID           string    // store-assigned UUID
	UserID       string    // owning profile id
	Title        string    // at most 60 characters
	Description  string    // defaults to Title when absent
	Date         string    // YYYY-MM-DD
	Time         string    // HH:MM, 24-hour
	Priority     string    // "low", "medium" or "high"
	Category     string    // one of the fixed category set
	CalendarLink string    // Google Calendar event link, empty when sync is off
	CreatedAt    time.Time // when the store accepted the task
}
