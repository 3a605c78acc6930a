package export

import (
	"context"
	"fmt"
	"time"

	"uni-deadline-tracker/internal/model"
	"uni-deadline-tracker/pkg/gcalendar"
)

const (
	logPrefixExport = "internal.export.ExportDeadlines"

	defaultDueTime  = "23:59"
	eventLeadTime   = time.Hour
	defaultTimezone = "Australia/Perth"
)

// ExportDeadlines creates one calendar event per dated deadline, named
// "<unit>: <title>". The event ends at the due moment and starts an hour
// before it. TBA deadlines are counted as skipped.
func (uc *implUseCase) ExportDeadlines(ctx context.Context, input ExportInput) (ExportOutput, error) {
	if len(input.Deadlines) == 0 {
		return ExportOutput{}, ErrNoDeadlines
	}
	tz := input.Timezone
	if tz == "" {
		tz = uc.cfg.Timezone
	}
	if tz == "" {
		tz = defaultTimezone
	}
	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.cfg.CalendarID
	}

	out := ExportOutput{}
	for _, d := range input.Deadlines {
		if d.IsTBA || d.Date.IsZero() {
			out.Skipped++
			continue
		}

		due := dueMoment(d)
		summary := fmt.Sprintf("%s: %s", d.Unit, d.Title)
		ev, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  calendarID,
			Summary:     summary,
			Description: describe(d),
			StartTime:   due.Add(-eventLeadTime),
			EndTime:     due,
			Timezone:    tz,
		})
		if err != nil {
			uc.l.Errorf(ctx, "%s: %s: %v", logPrefixExport, summary, err)
			return out, fmt.Errorf("%w: %s: %v", ErrCalendarCreate, summary, err)
		}
		out.Events = append(out.Events, ExportedEvent{
			DeadlineID: d.ID,
			EventID:    ev.ID,
			Summary:    ev.Summary,
			HtmlLink:   ev.HtmlLink,
		})
	}

	uc.l.Infof(ctx, "%s: created %d events, skipped %d TBA", logPrefixExport, len(out.Events), out.Skipped)
	return out, nil
}

// dueMoment combines the deadline date with its exact time, defaulting to
// end of day.
func dueMoment(d model.Deadline) time.Time {
	hhmm := d.ExactTime
	if hhmm == "" {
		hhmm = defaultDueTime
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		t, _ = time.Parse("15:04", defaultDueTime)
	}
	return time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), t.Hour(), t.Minute(), 0, 0, d.Date.Location())
}

func describe(d model.Deadline) string {
	desc := fmt.Sprintf("Assessment deadline for %s", d.Unit)
	if d.Week > 0 {
		desc += fmt.Sprintf(", teaching week %d", d.Week)
	}
	if d.Weight > 0 {
		desc += fmt.Sprintf(", worth %d%%", d.Weight)
	}
	return desc
}
