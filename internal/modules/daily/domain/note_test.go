package domain

import (
	"strings"
	"testing"
	"time"
)

func TestRenderDailyNoteWithEvents(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
	generated := time.Date(2025, 1, 15, 18, 30, 0, 0, time.Local)
	events := []NoteEvent{
		{Timestamp: "2025-01-15T09:30:00", Category: "THEORY", Activity: "PANDAS", RawInput: "started working on pandas theory"},
		{Timestamp: "2025-01-15T11:00:00", Category: "TASK", Activity: "LAUNDRY", Context: "quick chore", RawInput: "TASK LAUNDRY"},
		{Timestamp: "garbage", Category: "GAME", Activity: "VALORANT"},
	}

	note := RenderDailyNote(date, events, generated)

	if !strings.HasPrefix(note, "# 2025-01-15 Wednesday") {
		t.Fatalf("header wrong:\n%s", note)
	}
	if !strings.Contains(note, "- **09:30** [[THEORY]] **PANDAS**") {
		t.Fatalf("event line missing:\n%s", note)
	}
	if !strings.Contains(note, "  > started working on pandas theory") {
		t.Fatal("raw input quote missing")
	}
	if !strings.Contains(note, "**LAUNDRY** (quick chore)") {
		t.Fatal("context suffix missing")
	}
	if strings.Contains(note, "> TASK LAUNDRY") {
		t.Fatal("raw input equal to canonical form must not be quoted")
	}
	if !strings.Contains(note, "- **??** [[GAME]] **VALORANT**") {
		t.Fatal("unparseable timestamp must render as ??")
	}
	if !strings.Contains(note, "**Total activities:** 3") {
		t.Fatal("summary total missing")
	}
	if !strings.Contains(note, "*Generated: 2025-01-15 18:30*") {
		t.Fatal("generated footer missing")
	}
}

func TestRenderDailyNoteEmpty(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
	note := RenderDailyNote(date, nil, date)
	if !strings.Contains(note, "*No activities logged today.*") {
		t.Fatalf("empty marker missing:\n%s", note)
	}
	if !strings.Contains(note, "No activities.") {
		t.Fatal("empty summary missing")
	}
}

func TestSummaryBreakdownSortedByCount(t *testing.T) {
	t.Parallel()

	events := []NoteEvent{
		{Category: "TASK", Activity: "A"},
		{Category: "THEORY", Activity: "B"},
		{Category: "THEORY", Activity: "C"},
	}
	summary := summarize(events)
	theory := strings.Index(summary, "- THEORY: 2")
	task := strings.Index(summary, "- TASK: 1")
	if theory == -1 || task == -1 || theory > task {
		t.Fatalf("breakdown order wrong:\n%s", summary)
	}
}
