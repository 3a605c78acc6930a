package export

import "context"

// UseCase defines the business logic interface for calendar export.
type UseCase interface {
	// ExportDeadlines pushes dated deadlines to Google Calendar. TBA entries
	// are skipped, never guessed.
	ExportDeadlines(ctx context.Context, input ExportInput) (ExportOutput, error)
}
