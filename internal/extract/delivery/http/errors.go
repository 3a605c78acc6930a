package http

import "errors"

// Delivery-level errors.
var (
	errInvalidBody        = errors.New("invalid request body")
	errInvalidOffering    = errors.New("semester and year are required")
	errExportUnavailable  = errors.New("calendar export is not configured")
	errOutlineUnavailable = errors.New("outline fetching is not configured")
)
