package domain

import (
	"sort"
	"strings"
	"time"
)

type ActivityRollup struct {
	Activity string
	Minutes  int
	Display  string
	Sessions int
}

type TimeSpentReport struct {
	Timeframe    string
	Category     string
	Activity     string
	TotalMinutes int
	TotalDisplay string
	SessionCount int
	ByActivity   []ActivityRollup
}

// CalculateTimeSpent filters sessions by timeframe, category and activity,
// then rolls minutes up per activity. Sessions without a duration still
// count toward session totals but contribute zero minutes.
//
// Timeframe filtering uses the session start date: "day" is the same
// calendar date as now, "week" is under 7 days old, "month" under 30.
// Anything else means no time filter. Sessions without a timestamp pass
// every timeframe except "day".
func CalculateTimeSpent(sessions []Session, timeframe, category, activity string, now time.Time) TimeSpentReport {
	var filtered []Session
	for _, s := range sessions {
		if inTimeframe(s, timeframe, now) {
			filtered = append(filtered, s)
		}
	}

	if category != "" {
		cat := strings.ToUpper(category)
		kept := filtered[:0]
		for _, s := range filtered {
			if strings.ToUpper(s.Category) == cat {
				kept = append(kept, s)
			}
		}
		filtered = kept
	}
	if activity != "" {
		act := strings.ToLower(strings.TrimSpace(activity))
		kept := filtered[:0]
		for _, s := range filtered {
			if strings.Contains(strings.ToLower(s.Activity), act) {
				kept = append(kept, s)
			}
		}
		filtered = kept
	}

	totalMinutes := 0
	order := make([]string, 0, len(filtered))
	rollup := make(map[string]*ActivityRollup)
	for _, s := range filtered {
		minutes := 0
		if s.HasDuration {
			minutes = s.DurationMin
			totalMinutes += minutes
		}
		key := s.Activity
		if key == "" {
			key = "unknown"
		}
		entry, ok := rollup[key]
		if !ok {
			entry = &ActivityRollup{Activity: key}
			rollup[key] = entry
			order = append(order, key)
		}
		if minutes > 0 {
			entry.Minutes += minutes
		}
		entry.Sessions++
	}

	byActivity := make([]ActivityRollup, 0, len(order))
	for _, key := range order {
		entry := rollup[key]
		entry.Display = FormatDuration(entry.Minutes)
		byActivity = append(byActivity, *entry)
	}
	sort.SliceStable(byActivity, func(i, j int) bool {
		if byActivity[i].Minutes != byActivity[j].Minutes {
			return byActivity[i].Minutes > byActivity[j].Minutes
		}
		return byActivity[i].Sessions > byActivity[j].Sessions
	})

	return TimeSpentReport{
		Timeframe:    timeframe,
		Category:     strings.ToUpper(category),
		Activity:     activity,
		TotalMinutes: totalMinutes,
		TotalDisplay: FormatDuration(totalMinutes),
		SessionCount: len(filtered),
		ByActivity:   byActivity,
	}
}

func inTimeframe(s Session, timeframe string, now time.Time) bool {
	if s.StartStamp == "" {
		return timeframe == "all" || timeframe == "week" || timeframe == "month"
	}
	parsed, ok := parseStamp(s.StartStamp)
	if !ok {
		return false
	}
	switch timeframe {
	case "day":
		y1, m1, d1 := parsed.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case "week":
		return int(now.Sub(parsed).Hours()/24) < 7
	case "month":
		return int(now.Sub(parsed).Hours()/24) < 30
	}
	return true
}
