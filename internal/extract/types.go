package extract

import "uni-deadline-tracker/internal/model"

// OutlineInput carries the two documents of a unit outline web payload.
type OutlineInput struct {
	Unit           string
	Semester       int
	Year           int
	AssessmentList string // pipe-delimited assessment rows
	CalendarHTML   string // program calendar table markup
}

// PDFInput carries the text extracted from a PDF unit outline. Digit glyphs
// that could not be recovered arrive as placeholder sentinels.
type PDFInput struct {
	Unit     string
	Semester int
	Year     int
	Text     string
}

// RawInput is an unclassified document payload.
type RawInput struct {
	Unit     string
	Semester int
	Year     int
	Payload  string
}

// Output is the result of one extraction run.
type Output struct {
	Deadlines []model.Deadline `json:"deadlines"`
	Count     int              `json:"count"`
}
