package http

import (
	"context"

	"uni-deadline-tracker/internal/export"
	"uni-deadline-tracker/internal/extract"
	"uni-deadline-tracker/internal/outline"
	"uni-deadline-tracker/pkg/log"
)

// OutlineFetcher is the slice of the outline client the delivery layer needs.
type OutlineFetcher interface {
	FetchOutline(ctx context.Context, unit string, semester, year int) (outline.Document, error)
}

type handler struct {
	l        log.Logger
	uc       extract.UseCase
	exporter export.UseCase
	outlines OutlineFetcher
}

// New creates a new HTTP handler for the deadline extraction domain. The
// exporter and outline fetcher are optional; their routes report an error
// when unconfigured.
func New(l log.Logger, uc extract.UseCase, exporter export.UseCase, outlines OutlineFetcher) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		exporter: exporter,
		outlines: outlines,
	}
}
