package export

import "errors"

// Domain-specific errors for the export package.
var (
	ErrNoDeadlines    = errors.New("no deadlines to export")
	ErrCalendarCreate = errors.New("failed to create calendar event")
)
