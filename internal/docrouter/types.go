package docrouter

// Kind identifies which parser a document payload should be handed to.
type Kind string

const (
	KindHTMLCalendar Kind = "HTML_CALENDAR"
	KindAssessList   Kind = "ASSESSMENT_LIST"
	KindPDFSchedule  Kind = "PDF_SCHEDULE"
	KindPDFCalendar  Kind = "PDF_CALENDAR"
	KindUnknown      Kind = "UNKNOWN"
)

// RouteOutput is the classification result for one document payload.
type RouteOutput struct {
	Kind   Kind   `json:"kind"`
	Reason string `json:"reason"`
}
