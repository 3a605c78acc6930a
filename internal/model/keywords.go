package model

// Keywords is the injectable keyword configuration driving the heuristic
// parsers. The defaults were reverse-engineered from Curtin-style documents
// and are English-locale; deployments for other institutions override them
// in config rather than patching code.
type Keywords struct {
	// NonTeaching marks calendar rows that carry no assessments (breaks,
	// study weeks, exam periods). Matched case-insensitively as substrings.
	NonTeaching []string

	// Noise marks PDF text lines that are headers, footers or table labels
	// and never part of an assessment title.
	Noise []string

	// TBAPhrases are descriptive week/day values that mean "no resolvable
	// date" ("TBA", "2 hours after the workshop", exam weeks).
	TBAPhrases []string

	// CalendarHeaders are the short section-header lines that open a PDF's
	// week-by-week program calendar.
	CalendarHeaders []string

	// Assessments is the ordered keyword table for program-calendar rows,
	// most specific first so that a generic keyword contained in an earlier
	// match is suppressed.
	Assessments []string
}

// WithOverrides returns a copy of k with each non-empty override list
// applied. Lists left empty in config keep the defaults.
func (k Keywords) WithOverrides(nonTeaching, noise, tba, headers, assessments []string) Keywords {
	if len(nonTeaching) > 0 {
		k.NonTeaching = nonTeaching
	}
	if len(noise) > 0 {
		k.Noise = noise
	}
	if len(tba) > 0 {
		k.TBAPhrases = tba
	}
	if len(headers) > 0 {
		k.CalendarHeaders = headers
	}
	if len(assessments) > 0 {
		k.Assessments = assessments
	}
	return k
}

// DefaultKeywords returns the keyword sets observed in sample documents.
func DefaultKeywords() Keywords {
	return Keywords{
		NonTeaching: []string{
			"tuition free",
			"tuition-free",
			"study week",
			"examination",
			"mid-semester break",
			"mid semester break",
			"orientation",
		},
		Noise: []string{
			"assessment task",
			"due date",
			"value %",
			"weighting",
			"unit outline",
			"curtin university",
			"school of",
			"faculty of",
			"learning outcome",
			"page ",
			"bentley campus",
		},
		TBAPhrases: []string{
			"tba",
			"to be advised",
			"to be announced",
			"study week",
			"exam",
			"hours after",
			"refer to",
		},
		CalendarHeaders: []string{
			"program calendar",
			"programme calendar",
		},
		Assessments: []string{
			"Mid-Semester Test",
			"Workshop Quiz",
			"eTest",
			"Practical Test",
			"Assignment",
			"Lab Report",
			"Laboratory Report",
			"Worksheet",
			"Quiz",
			"Exam",
		},
	}
}
