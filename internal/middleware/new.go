package middleware

import (
	"uni-deadline-tracker/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l      log.Logger
	apiKey string
}

func New(l log.Logger, apiKey string) Middleware {
	return Middleware{
		l:      l,
		apiKey: apiKey,
	}
}
