package usecase

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"uni-deadline-tracker/internal/extract"
	"uni-deadline-tracker/internal/extract/htmlcal"
	"uni-deadline-tracker/internal/extract/reconcile"
	"uni-deadline-tracker/internal/model"
)

// stubsFromTitles turns the pipe-list inventory into TBA schedule entries, so
// every listed assessment surfaces in the final output even when no source can
// date it.
func stubsFromTitles(titles []model.TitleItem) []model.CalendarItem {
	items := make([]model.CalendarItem, 0, len(titles))
	for _, t := range titles {
		items = append(items, model.CalendarItem{
			Title:  t.Title,
			Weight: t.Weight,
			IsTBA:  true,
		})
	}
	return items
}

// attachWeekHints sets a best-effort week on items that stayed TBA after the
// merge, when any kept calendar cell mentions the title. The item remains TBA;
// the week is a hint only. Keys are walked in sorted order so repeated runs
// pick the same hint.
func attachWeekHints(items []model.CalendarItem, hints htmlcal.WeekHints) {
	if len(hints) == 0 {
		return
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i := range items {
		if !items[i].IsTBA || items[i].Week != 0 {
			continue
		}
		norm := htmlcal.NormalizeHint(items[i].Title)
		if norm == "" {
			continue
		}
		for _, k := range keys {
			if strings.Contains(k, norm) {
				items[i].Week = model.ClampWeek(hints[k])
				break
			}
		}
	}
}

// output assigns IDs, applies sequence numbering and wraps the result.
func (uc *implUseCase) output(items []model.CalendarItem, unit string) extract.Output {
	deadlines := make([]model.Deadline, 0, len(items))
	for _, it := range items {
		deadlines = append(deadlines, model.Deadline{
			ID:              uuid.NewString(),
			Title:           it.Title,
			Unit:            unit,
			Week:            it.Week,
			Date:            it.Date,
			ExactTime:       it.ExactTime,
			IsTBA:           it.IsTBA,
			Weight:          it.Weight,
			CalendarSourced: it.CalendarSourced,
		})
	}
	deadlines = reconcile.AddSequenceNumbers(deadlines)
	return extract.Output{Deadlines: deadlines, Count: len(deadlines)}
}
