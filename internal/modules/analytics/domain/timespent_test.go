package domain

import (
	"testing"
	"time"
)

func TestTimeSpentDayExcludesOtherDates(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 18, 0, 0, 0, time.Local)
	sessions := []Session{
		{Category: "THEORY", Activity: "pandas", StartStamp: "2025-01-15T09:00:00", DurationMin: 60, HasDuration: true},
		{Category: "THEORY", Activity: "pandas", StartStamp: "2025-01-10T09:00:00", DurationMin: 120, HasDuration: true},
		{Category: "PRACTICE", Activity: "rust", StartStamp: "2025-01-15T11:00:00", DurationMin: 30, HasDuration: true},
	}
	report := CalculateTimeSpent(sessions, "day", "THEORY", "", now)
	if report.TotalMinutes != 60 {
		t.Fatalf("total %d, want 60", report.TotalMinutes)
	}
	if report.SessionCount != 1 {
		t.Fatalf("count %d, want 1", report.SessionCount)
	}
	if len(report.ByActivity) != 1 || report.ByActivity[0].Activity != "pandas" {
		t.Fatalf("rollup %+v", report.ByActivity)
	}
}

func TestTimeSpentActivitySubstringMatch(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 18, 0, 0, 0, time.Local)
	sessions := []Session{
		{Category: "THEORY", Activity: "PANDAS DATAFRAMES", StartStamp: "2025-01-15T09:00:00", DurationMin: 45, HasDuration: true},
		{Category: "PRACTICE", Activity: "rust", StartStamp: "2025-01-15T10:00:00", DurationMin: 30, HasDuration: true},
	}
	report := CalculateTimeSpent(sessions, "day", "", "pandas", now)
	if report.TotalMinutes != 45 || report.SessionCount != 1 {
		t.Fatalf("total %d count %d", report.TotalMinutes, report.SessionCount)
	}
}

func TestTimeSpentDurationlessSessionsCountButAddZero(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 18, 0, 0, 0, time.Local)
	sessions := []Session{
		{Category: "TASK", Activity: "laundry", StartStamp: "2025-01-15T09:00:00", DurationMin: 20, HasDuration: true},
		{Category: "TASK", Activity: "laundry"},
	}
	report := CalculateTimeSpent(sessions, "week", "", "", now)
	if report.SessionCount != 2 {
		t.Fatalf("count %d, want 2 (durationless still counts)", report.SessionCount)
	}
	if report.TotalMinutes != 20 {
		t.Fatalf("total %d, want 20", report.TotalMinutes)
	}
	if report.ByActivity[0].Sessions != 2 || report.ByActivity[0].Minutes != 20 {
		t.Fatalf("rollup %+v", report.ByActivity[0])
	}
}

func TestTimeSpentTimestamplessExcludedFromDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 18, 0, 0, 0, time.Local)
	sessions := []Session{{Category: "TASK", Activity: "laundry"}}
	if report := CalculateTimeSpent(sessions, "day", "", "", now); report.SessionCount != 0 {
		t.Fatalf("day count %d, want 0", report.SessionCount)
	}
	if report := CalculateTimeSpent(sessions, "month", "", "", now); report.SessionCount != 1 {
		t.Fatalf("month count %d, want 1", report.SessionCount)
	}
	// An unrecognized timeframe means no time filter at all.
	if report := CalculateTimeSpent(sessions, "all", "", "", now); report.SessionCount != 1 {
		t.Fatalf("all count %d, want 1", report.SessionCount)
	}
}

func TestTimeSpentSortsByMinutesThenSessions(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 18, 0, 0, 0, time.Local)
	sessions := []Session{
		{Category: "TASK", Activity: "alpha", StartStamp: "2025-01-15T09:00:00", DurationMin: 10, HasDuration: true},
		{Category: "TASK", Activity: "beta", StartStamp: "2025-01-15T10:00:00", DurationMin: 30, HasDuration: true},
		{Category: "TASK", Activity: "gamma", StartStamp: "2025-01-15T11:00:00", DurationMin: 10, HasDuration: true},
		{Category: "TASK", Activity: "gamma", StartStamp: "2025-01-15T12:00:00"},
	}
	report := CalculateTimeSpent(sessions, "day", "", "", now)
	got := make([]string, 0, len(report.ByActivity))
	for _, entry := range report.ByActivity {
		got = append(got, entry.Activity)
	}
	want := []string{"beta", "gamma", "alpha"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
}
