package usecase

import (
	"uni-deadline-tracker/internal/docrouter"
	"uni-deadline-tracker/internal/extract"
	"uni-deadline-tracker/internal/model"
	pkgLog "uni-deadline-tracker/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	router docrouter.Router
	kw     model.Keywords
}

var _ extract.UseCase = (*implUseCase)(nil)

// New creates a new extract UseCase instance.
func New(l pkgLog.Logger, router docrouter.Router, kw model.Keywords) *implUseCase {
	return &implUseCase{
		l:      l,
		router: router,
		kw:     kw,
	}
}
