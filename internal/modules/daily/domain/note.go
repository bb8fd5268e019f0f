package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// NoteEvent is the slice of an event a daily note renders.
type NoteEvent struct {
	Timestamp string
	Category  string
	Activity  string
	Context   string
	RawInput  string
}

// RenderDailyNote produces the body of a daily note: the activity log with
// one line per event, then summary statistics. Unparseable event times
// render as "??" so the event is never dropped.
func RenderDailyNote(date time.Time, events []NoteEvent, generatedAt time.Time) string {
	lines := []string{
		fmt.Sprintf("# %s %s", date.Format("2006-01-02"), date.Weekday()),
		"",
		"## Activity Log",
		"",
	}

	if len(events) == 0 {
		lines = append(lines, "*No activities logged today.*")
	} else {
		for _, event := range events {
			timeStr := "??"
			if at, ok := parseStamp(event.Timestamp); ok {
				timeStr = at.Format("15:04")
			}

			line := fmt.Sprintf("- **%s** ", timeStr)
			if event.Category != "" {
				line += fmt.Sprintf("[[%s]] ", event.Category)
			}
			line += fmt.Sprintf("**%s**", event.Activity)
			if event.Context != "" {
				line += fmt.Sprintf(" (%s)", event.Context)
			}
			lines = append(lines, line)

			canonical := strings.TrimSpace(event.Category + " " + event.Activity)
			if event.RawInput != "" && event.RawInput != canonical {
				lines = append(lines, fmt.Sprintf("  > %s", event.RawInput))
			}
		}
	}

	lines = append(lines,
		"",
		"## Summary",
		"",
		summarize(events),
		"",
		"---",
		"",
		fmt.Sprintf("*Generated: %s*", generatedAt.Format("2006-01-02 15:04")),
	)
	return strings.Join(lines, "\n")
}

func summarize(events []NoteEvent) string {
	if len(events) == 0 {
		return "No activities."
	}

	counts := make(map[string]int)
	var order []string
	for _, event := range events {
		cat := event.Category
		if cat == "" {
			cat = "UNKNOWN"
		}
		if _, ok := counts[cat]; !ok {
			order = append(order, cat)
		}
		counts[cat]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	lines := []string{fmt.Sprintf("**Total activities:** %d", len(events)), "**Breakdown:**"}
	for _, cat := range order {
		lines = append(lines, fmt.Sprintf("- %s: %d", cat, counts[cat]))
	}
	return strings.Join(lines, "\n")
}

func parseStamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
