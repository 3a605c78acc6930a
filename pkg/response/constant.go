package response

// Standard messages and codes.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Internal server error"

	InternalServerErrorCode = 500
)

// DateFormat is the wire format for Date values.
const DateFormat = "2006-01-02"
