package domain

import (
	"fmt"
	"strings"
	"time"
)

type EventType string

const (
	EventStart   EventType = "start"
	EventDone    EventType = "done"
	EventNote    EventType = "note"
	EventUnknown EventType = "unknown"
)

func ParseEventType(s string) EventType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return EventStart
	case "done":
		return EventDone
	case "note":
		return EventNote
	default:
		return EventUnknown
	}
}

type Category string

const (
	CategoryTheory   Category = "THEORY"
	CategoryPractice Category = "PRACTICE"
	CategoryTask     Category = "TASK"
	CategoryGame     Category = "GAME"
	CategoryGoal     Category = "GOAL"
	CategoryUnknown  Category = "UNKNOWN"
)

// RatioCategories is the fixed set the ratio breakdown reports, even at
// zero count. GOAL and unknown categories never participate in ratios.
var RatioCategories = []Category{CategoryTheory, CategoryPractice, CategoryTask, CategoryGame}

func ParseCategory(s string) Category {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "THEORY":
		return CategoryTheory
	case "PRACTICE":
		return CategoryPractice
	case "TASK":
		return CategoryTask
	case "GAME":
		return CategoryGame
	case "GOAL":
		return CategoryGoal
	default:
		return CategoryUnknown
	}
}

// Event is an immutable recorded fact. Ordering key is
// (timestamp, Seq); Seq is the insertion sequence and breaks timestamp
// ties in recording order.
type Event struct {
	Seq       int64
	Timestamp string
	Type      EventType
	Category  Category
	Activity  string
	Context   string
	RawInput  string
}

// OccurredAt parses the event timestamp tolerantly. A missing or
// malformed timestamp is reported as absent, never as an error.
func (e Event) OccurredAt() (time.Time, bool) {
	return ParseTimestamp(e.Timestamp)
}

func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CanonicalLine renders the master.log form of an event:
// "START THEORY PANDAS", "DONE TASK LAUNDRY", "NOTE SOMETHING".
func (e Event) CanonicalLine() string {
	switch e.Type {
	case EventNote:
		return fmt.Sprintf("NOTE %s", strings.ToUpper(e.Activity))
	case EventDone:
		return fmt.Sprintf("DONE %s %s", e.Category, strings.ToUpper(e.Activity))
	default:
		return fmt.Sprintf("START %s %s", e.Category, strings.ToUpper(e.Activity))
	}
}

// ParseStartLine reads a "START <CATEGORY> <ACTIVITY>" master.log line.
// Non-start lines (DONE/NOTE/blank/garbage) return ok=false.
func ParseStartLine(line string) (category Category, activity string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 3)
	if len(parts) < 3 || !strings.EqualFold(parts[0], "START") {
		return "", "", false
	}
	return ParseCategory(parts[1]), parts[2], true
}
