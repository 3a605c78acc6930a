package extract

import "errors"

// Domain-specific errors for the extract package.
var (
	ErrMissingUnit     = errors.New("unit code is required")
	ErrEmptyInput      = errors.New("no document content provided")
	ErrUnknownDocument = errors.New("payload matches no known document structure")
)
