package usecase

import (
	"context"

	"uni-deadline-tracker/internal/docrouter"
	"uni-deadline-tracker/internal/extract"
	"uni-deadline-tracker/internal/extract/assesslist"
	"uni-deadline-tracker/internal/extract/htmlcal"
	"uni-deadline-tracker/internal/extract/pdfcal"
	"uni-deadline-tracker/internal/extract/pdfsched"
	"uni-deadline-tracker/internal/extract/reconcile"
)

// Log prefixes
const (
	logPrefixOutline = "extract.usecase.ExtractFromOutline"
	logPrefixPDF     = "extract.usecase.ExtractFromPDF"
	logPrefixRaw     = "extract.usecase.Extract"
)

// ExtractFromOutline turns a web outline payload into deadlines. The pipe list
// is the authoritative inventory of which assessments exist; the HTML calendar
// is the authoritative source of when they are due. Inventory entries the
// calendar cannot date stay TBA, with a week hint attached when a calendar
// cell mentions them.
func (uc *implUseCase) ExtractFromOutline(ctx context.Context, input extract.OutlineInput) (extract.Output, error) {
	if input.Unit == "" {
		return extract.Output{}, extract.ErrMissingUnit
	}
	if input.AssessmentList == "" && input.CalendarHTML == "" {
		return extract.Output{}, extract.ErrEmptyInput
	}

	titles := assesslist.Parse(input.AssessmentList)
	schedule := stubsFromTitles(titles)
	calItems := htmlcal.Parse(input.CalendarHTML, input.Unit, input.Semester, input.Year, uc.kw)

	merged := reconcile.Merge(schedule, calItems)
	attachWeekHints(merged, htmlcal.BuildWeekHints(input.CalendarHTML, uc.kw))

	uc.l.Infof(ctx, "%s: %s: %d titles, %d calendar items, %d merged",
		logPrefixOutline, input.Unit, len(titles), len(calItems), len(merged))

	return uc.output(merged, input.Unit), nil
}

// ExtractFromPDF runs both PDF parsers over the same extracted text and
// reconciles them. The labeled schedule blocks carry weights and exact dates;
// the program calendar section recovers weeks when digit glyphs were lost.
func (uc *implUseCase) ExtractFromPDF(ctx context.Context, input extract.PDFInput) (extract.Output, error) {
	if input.Unit == "" {
		return extract.Output{}, extract.ErrMissingUnit
	}
	if input.Text == "" {
		return extract.Output{}, extract.ErrEmptyInput
	}

	schedule := pdfsched.Parse(input.Text, input.Unit, input.Year, input.Semester, uc.kw)
	calItems := pdfcal.Parse(input.Text, input.Unit, input.Year, input.Semester, uc.kw)
	merged := reconcile.Merge(schedule, calItems)

	uc.l.Infof(ctx, "%s: %s: %d schedule items, %d calendar items, %d merged",
		logPrefixPDF, input.Unit, len(schedule), len(calItems), len(merged))

	return uc.output(merged, input.Unit), nil
}

// Extract classifies the payload and dispatches to the matching pipeline.
func (uc *implUseCase) Extract(ctx context.Context, input extract.RawInput) (extract.Output, error) {
	route := uc.router.Classify(ctx, input.Payload)
	uc.l.Infof(ctx, "%s: %s routed to %s", logPrefixRaw, input.Unit, route.Kind)

	switch route.Kind {
	case docrouter.KindHTMLCalendar:
		return uc.ExtractFromOutline(ctx, extract.OutlineInput{
			Unit:         input.Unit,
			Semester:     input.Semester,
			Year:         input.Year,
			CalendarHTML: input.Payload,
		})
	case docrouter.KindAssessList:
		return uc.ExtractFromOutline(ctx, extract.OutlineInput{
			Unit:           input.Unit,
			Semester:       input.Semester,
			Year:           input.Year,
			AssessmentList: input.Payload,
		})
	case docrouter.KindPDFSchedule, docrouter.KindPDFCalendar:
		return uc.ExtractFromPDF(ctx, extract.PDFInput{
			Unit:     input.Unit,
			Semester: input.Semester,
			Year:     input.Year,
			Text:     input.Payload,
		})
	default:
		return extract.Output{}, extract.ErrUnknownDocument
	}
}
