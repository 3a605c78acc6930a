package docrouter

import (
	"context"
	"regexp"
	"strings"
)

var (
	htmlMarkerRe = regexp.MustCompile(`(?i)<\s*(html|table|tr|td)\b`)
	weekLabelRe  = regexp.MustCompile(`(?i)(^|\n)\s*week\s*:`)
)

// Classify routes a payload to the parser whose structural markers it shows.
// Checks run in order from most to least distinctive, so an HTML export that
// happens to mention "Week:" still routes to the HTML parser.
// Convention: Method accepts context.Context as first parameter
func (r *DocRouter) Classify(ctx context.Context, payload string) RouteOutput {
	out := r.classify(payload)
	r.l.Infof(ctx, "%s: classified as %s (%s)", LogPrefixClassify, out.Kind, out.Reason)
	return out
}

func (r *DocRouter) classify(payload string) RouteOutput {
	if htmlMarkerRe.MatchString(payload) {
		return RouteOutput{Kind: KindHTMLCalendar, Reason: ReasonHTMLMarkers}
	}
	if countPipeRows(payload) >= minPipeRows {
		return RouteOutput{Kind: KindAssessList, Reason: ReasonPipeRows}
	}
	if weekLabelRe.MatchString(payload) {
		return RouteOutput{Kind: KindPDFSchedule, Reason: ReasonWeekLabels}
	}
	if r.hasCalendarHeader(payload) {
		return RouteOutput{Kind: KindPDFCalendar, Reason: ReasonCalendarBlock}
	}
	return RouteOutput{Kind: KindUnknown, Reason: ReasonNoSignal}
}

// countPipeRows counts semicolon-separated entries that carry both a field
// separator and a textual weight, the shape of an assessment pipe list.
func countPipeRows(payload string) int {
	n := 0
	for _, entry := range strings.Split(payload, ";") {
		el := strings.ToLower(entry)
		if strings.Contains(el, "|") && strings.Contains(el, "percent") {
			n++
		}
	}
	return n
}

func (r *DocRouter) hasCalendarHeader(payload string) bool {
	pl := strings.ToLower(payload)
	for _, h := range r.kw.CalendarHeaders {
		if strings.Contains(pl, strings.ToLower(h)) {
			return true
		}
	}
	return false
}
