// Package docrouter decides which extraction parser a raw document payload
// belongs to, based only on structural markers in the text.
package docrouter

import (
	"context"

	"uni-deadline-tracker/internal/model"
	"uni-deadline-tracker/pkg/log"
)

// Router classifies raw document payloads.
type Router interface {
	Classify(ctx context.Context, payload string) RouteOutput
}

// DocRouter applies ordered structural checks to a payload.
type DocRouter struct {
	kw model.Keywords
	l  log.Logger
}

var _ Router = (*DocRouter)(nil)

// New creates a new DocRouter.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(kw model.Keywords, l log.Logger) *DocRouter {
	return &DocRouter{
		kw: kw,
		l:  l,
	}
}
