package export

import (
	"context"

	"uni-deadline-tracker/internal/model"
	"uni-deadline-tracker/pkg/gcalendar"
)

// EventCreator is the slice of the calendar client this package needs.
type EventCreator interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config carries export defaults applied when a request leaves them blank.
type Config struct {
	CalendarID string // empty targets the primary calendar
	Timezone   string
}

// ExportInput is the input for a calendar export run.
type ExportInput struct {
	CalendarID string
	Timezone   string
	Deadlines  []model.Deadline
}

// ExportedEvent records one created calendar event.
type ExportedEvent struct {
	DeadlineID string `json:"deadline_id"`
	EventID    string `json:"event_id"`
	Summary    string `json:"summary"`
	HtmlLink   string `json:"html_link"`
}

// ExportOutput is the result of a calendar export run.
type ExportOutput struct {
	Events  []ExportedEvent `json:"events"`
	Skipped int             `json:"skipped"` // TBA deadlines left out
}
