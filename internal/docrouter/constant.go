package docrouter

// Log prefixes
const (
	LogPrefixClassify = "internal.docrouter.Classify"
)

// Classification reasons
const (
	ReasonHTMLMarkers   = "HTML table markers present"
	ReasonPipeRows      = "pipe-delimited weighted rows"
	ReasonWeekLabels    = "schedule week labels present"
	ReasonCalendarBlock = "program calendar section header"
	ReasonNoSignal      = "no recognizable document structure"
)

// minPipeRows is how many weighted pipe rows a payload needs before it is
// treated as an assessment list rather than incidental punctuation.
const minPipeRows = 1
