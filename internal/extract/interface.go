package extract

import (
	"context"
)

// UseCase defines the business logic interface for the deadline extraction domain.
type UseCase interface {
	// ExtractFromOutline reconciles a pipe-delimited assessment listing with an
	// HTML program calendar into dated or TBA deadlines.
	ExtractFromOutline(ctx context.Context, input OutlineInput) (Output, error)

	// ExtractFromPDF reconciles the labeled schedule blocks and the program
	// calendar section of extracted PDF text.
	ExtractFromPDF(ctx context.Context, input PDFInput) (Output, error)

	// Extract classifies a raw payload and dispatches to the matching pipeline.
	Extract(ctx context.Context, input RawInput) (Output, error)
}
