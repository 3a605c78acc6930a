package outline

import "time"

// Document is one unit outline payload as served by the university API: the
// pipe-delimited assessment listing and the program calendar table markup.
type Document struct {
	Unit           string    `json:"unit"`
	Semester       int       `json:"semester"`
	Year           int       `json:"year"`
	AssessmentList string    `json:"assessment_list"`
	CalendarHTML   string    `json:"calendar_html"`
	FetchedAt      time.Time `json:"-"`
}

// Config holds the outline API settings.
type Config struct {
	BaseURL        string
	AccessToken    string
	CacheSize      int
	CacheTTL       time.Duration
	RequestsPerMin int
}
