// Package export turns reconciled deadlines into Google Calendar events.
package export

import (
	pkgLog "uni-deadline-tracker/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	calendar EventCreator
	cfg      Config
}

var _ UseCase = (*implUseCase)(nil)

// New creates a new export UseCase instance.
func New(l pkgLog.Logger, calendar EventCreator, cfg Config) *implUseCase {
	return &implUseCase{
		l:        l,
		calendar: calendar,
		cfg:      cfg,
	}
}
