package model

import "time"

// TitleItem is one row of a unit's assessment listing: the authoritative
// inventory of which assessments exist, before any date is known.
type TitleItem struct {
	Title  string
	Weight int // percentage 0-100; 0 means the row carried no weight
}

// CalendarItem is one due-date instance of an assessment. A recurring weekly
// item expands into one CalendarItem per occurrence.
type CalendarItem struct {
	Title           string
	Week            int       // teaching week 1-20; 0 means no week
	Date            time.Time // zero when no date could be derived
	ExactTime       string    // "HH:MM" when the document names one
	Weight          int       // percentage; 0 means unknown
	IsTBA           bool      // true: week/date are best-effort hints only
	CalendarSourced bool      // date came from a week-by-week calendar table
}

// Deadline is the reconciled record. The HTTP wire shape is the delivery
// layer's DTO; these tags only serve internal encoding, so nothing is elided.
type Deadline struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Unit            string    `json:"unit"`
	Week            int       `json:"week"`
	Date            time.Time `json:"date"`
	ExactTime       string    `json:"exact_time"`
	IsTBA           bool      `json:"is_tba"`
	Weight          int       `json:"weight"`
	CalendarSourced bool      `json:"calendar_sourced"`
}

// ClampWeek maps out-of-range week numbers to "no week".
func ClampWeek(w int) int {
	if w < 1 || w > 20 {
		return 0
	}
	return w
}
