// Package assesslist parses the flat pipe-delimited assessment listing
// returned by the unit outline API. The listing is the authoritative
// inventory of which assessments exist in a unit.
package assesslist

import (
	"regexp"
	"strings"

	"uni-deadline-tracker/internal/model"
	"uni-deadline-tracker/pkg/digits"
)

// Rows are terminated by ';' and columns delimited by '|':
//
//	1| Assignment| 40 percent| ULOs 1,2;
//
// Column 0 is an ordinal, column 1 the title, column 2 a free-text weight
// description. Remaining columns are ignored.
var weightRe = regexp.MustCompile(`(?i)([\d#][\d#\s]*)\s*percent`)

// Parse converts the listing into title items. Rows with an empty title are
// skipped; a row whose weight digits were lost keeps a zero weight.
func Parse(text string) []model.TitleItem {
	items := []model.TitleItem{}
	for _, row := range strings.Split(text, ";") {
		cols := strings.Split(row, "|")
		if len(cols) < 2 {
			continue
		}
		title := strings.TrimSpace(cols[1])
		if title == "" {
			continue
		}

		item := model.TitleItem{Title: title}
		if len(cols) > 2 {
			if m := weightRe.FindStringSubmatch(cols[2]); m != nil {
				if w, ok := digits.ParseInt(m[1]); ok && w <= 100 {
					item.Weight = w
				}
			}
		}
		items = append(items, item)
	}
	return items
}
