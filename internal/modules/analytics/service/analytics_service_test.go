package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tvp/internal/modules/analytics/domain"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type fakeEventSource struct {
	starts    []domain.StartEvent
	lines     []string
	startsErr error
}

func (f *fakeEventSource) Starts(ctx context.Context) ([]domain.StartEvent, error) {
	if f.startsErr != nil {
		return nil, f.startsErr
	}
	return f.starts, nil
}

func (f *fakeEventSource) MasterLines(ctx context.Context) ([]string, error) {
	return f.lines, nil
}

func newService(events *fakeEventSource) *AnalyticsService {
	clk := &fakeClock{values: []time.Time{time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)}}
	return NewAnalyticsService(clk, events)
}

func TestSessionsFallBackToLogWhenNoStartRows(t *testing.T) {
	t.Parallel()

	events := &fakeEventSource{lines: []string{
		"START THEORY PANDAS",
		"START PRACTICE RUST",
	}}
	svc := newService(events)

	sessions := svc.Sessions(context.Background())
	if len(sessions) != 2 {
		t.Fatalf("expected 2 log-derived sessions, got %d", len(sessions))
	}
	if sessions[0].HasDuration {
		t.Fatal("log-derived sessions have no durations")
	}
}

func TestSessionsFallBackToLogOnStoreFailure(t *testing.T) {
	t.Parallel()

	events := &fakeEventSource{
		startsErr: errors.New("locked"),
		lines:     []string{"START TASK LAUNDRY"},
	}
	svc := newService(events)

	sessions := svc.Sessions(context.Background())
	if len(sessions) != 1 {
		t.Fatalf("expected fallback session, got %d", len(sessions))
	}
}

func TestAnswerRoutesRatioFirst(t *testing.T) {
	t.Parallel()

	events := &fakeEventSource{starts: []domain.StartEvent{
		{Timestamp: "2025-01-15T09:00:00", Category: "THEORY", Activity: "pandas"},
	}}
	svc := newService(events)

	// "ratio" wins even when other cue words are present.
	answer := svc.AnswerQuery(context.Background(), "what is my theory to practice ratio this week", "week")
	if answer.Type != "ratio" {
		t.Fatalf("type %q, want ratio", answer.Type)
	}
}

func TestAnswerTimeSpentInfersTimeframeAndActivity(t *testing.T) {
	t.Parallel()

	events := &fakeEventSource{starts: []domain.StartEvent{
		{Timestamp: "2025-01-15T09:00:00", Category: "THEORY", Activity: "pandas"},
		{Timestamp: "2025-01-15T10:00:00", Category: "PRACTICE", Activity: "rust"},
	}}
	svc := newService(events)

	answer := svc.AnswerQuery(context.Background(), "How much time today on pandas?", "week")
	if answer.Type != "time_spent" {
		t.Fatalf("type %q", answer.Type)
	}
	if answer.TimeSpent.Timeframe != "day" {
		t.Fatalf("timeframe %q, want day", answer.TimeSpent.Timeframe)
	}
	if answer.TimeSpent.Activity != "pandas" {
		t.Fatalf("activity %q, want pandas with trailing ? stripped", answer.TimeSpent.Activity)
	}
}

func TestAnswerActivityUsesLastOnOccurrence(t *testing.T) {
	t.Parallel()

	events := &fakeEventSource{starts: []domain.StartEvent{
		{Timestamp: "2025-01-15T10:00:00", Category: "PRACTICE", Activity: "rust"},
	}}
	svc := newService(events)

	answer := svc.AnswerQuery(context.Background(), "how much time spent on working on rust?", "week")
	if answer.Type != "time_spent" {
		t.Fatalf("type %q", answer.Type)
	}
	if answer.TimeSpent.Activity != "rust" {
		t.Fatalf("activity %q, want text after the last \" on \"", answer.TimeSpent.Activity)
	}
}

func TestAnswerTimeSpentCategoryBeatsActivity(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeEventSource{})
	answer := svc.AnswerQuery(context.Background(), "how much time spent on theory", "week")
	if answer.Type != "time_spent" {
		t.Fatalf("type %q", answer.Type)
	}
	if answer.TimeSpent.Category != "THEORY" {
		t.Fatalf("category %q", answer.TimeSpent.Category)
	}
	if answer.TimeSpent.Activity != "" {
		t.Fatalf("activity %q, want empty when category matched", answer.TimeSpent.Activity)
	}
}

func TestAnswerTimelineCapsRecentSessions(t *testing.T) {
	t.Parallel()

	var starts []domain.StartEvent
	for _, stamp := range []string{"05", "06", "07", "08", "09", "10", "11"} {
		starts = append(starts, domain.StartEvent{
			Timestamp: "2025-01-15T" + stamp + ":00:00",
			Category:  "TASK",
			Activity:  "job " + stamp,
		})
	}
	svc := newService(&fakeEventSource{starts: starts})

	answer := svc.AnswerQuery(context.Background(), "show my recent sessions", "week")
	if answer.Type != "timeline" {
		t.Fatalf("type %q", answer.Type)
	}
	if len(answer.Timeline.Recent) != 5 {
		t.Fatalf("recent %d, want 5", len(answer.Timeline.Recent))
	}
	if answer.Timeline.Count != 7 {
		t.Fatalf("count %d, want 7", answer.Timeline.Count)
	}
	if answer.Timeline.Recent[0].Activity != "job 11" {
		t.Fatalf("first recent %q, want newest", answer.Timeline.Recent[0].Activity)
	}
	if answer.Timeline.Recent[4].Activity != "job 07" {
		t.Fatalf("last recent %q", answer.Timeline.Recent[4].Activity)
	}
}

func TestAnswerSummaryListsDistinctActivities(t *testing.T) {
	t.Parallel()

	events := &fakeEventSource{starts: []domain.StartEvent{
		{Timestamp: "2025-01-15T09:00:00", Category: "THEORY", Activity: "pandas"},
		{Timestamp: "2025-01-15T10:00:00", Category: "PRACTICE", Activity: "rust"},
		{Timestamp: "2025-01-15T11:00:00", Category: "THEORY", Activity: "pandas"},
	}}
	svc := newService(events)

	answer := svc.AnswerQuery(context.Background(), "what did i work on", "week")
	if answer.Type != "summary" {
		t.Fatalf("type %q", answer.Type)
	}
	if len(answer.Summary.Activities) != 2 {
		t.Fatalf("activities %v, want 2 distinct", answer.Summary.Activities)
	}
}

func TestAnswerUnknownQueryGetsHelp(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeEventSource{})
	answer := svc.AnswerQuery(context.Background(), "sing me a song", "week")
	if answer.Type != "unknown" {
		t.Fatalf("type %q", answer.Type)
	}
	if answer.Message != UnknownQueryHelp {
		t.Fatalf("message %q", answer.Message)
	}
}
