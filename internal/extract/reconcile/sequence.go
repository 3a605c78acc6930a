package reconcile

import (
	"fmt"
	"regexp"
	"strings"

	"uni-deadline-tracker/internal/model"
)

var trailingParenRe = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// AddSequenceNumbers rewrites the titles of recurring deadlines so a weekly
// "Worksheet" becomes "Worksheet 1" … "Worksheet N". Items are grouped by
// (unit, base title); groups of one keep their title. Encounter order is
// preserved, which is date-ascending after merging.
func AddSequenceNumbers(deadlines []model.Deadline) []model.Deadline {
	type key struct{ unit, base string }

	counts := make(map[key]int)
	for _, d := range deadlines {
		counts[key{d.Unit, baseTitle(d.Title)}]++
	}

	out := make([]model.Deadline, len(deadlines))
	copy(out, deadlines)
	seen := make(map[key]int)
	for i := range out {
		k := key{out[i].Unit, baseTitle(out[i].Title)}
		if counts[k] < 2 {
			continue
		}
		seen[k]++
		out[i].Title = fmt.Sprintf("%s %d", k.base, seen[k])
	}
	return out
}

// baseTitle strips a trailing " - description" suffix and any trailing
// parenthetical, so "Worksheet - online (x 9)" groups as "Worksheet".
func baseTitle(title string) string {
	title = trailingParenRe.ReplaceAllString(title, "")
	if i := strings.Index(title, " - "); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}
