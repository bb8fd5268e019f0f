package domain

import (
	"fmt"
	"strings"
	"time"
)

// StartEvent is the slice of an event the session deriver needs.
type StartEvent struct {
	Timestamp string
	Category  string
	Activity  string
}

// Session is derived, never stored. A session runs from its start event to
// the next start event; the last one is still running.
type Session struct {
	Category    string
	Activity    string
	StartStamp  string
	EndStamp    string
	StartIndex  int
	EndIndex    int
	DurationMin int
	HasDuration bool
	Display     string
	Active      bool
	RawLine     string
}

// DeriveSessions replays ordered start events into sessions. end(i) is
// start(i+1); the final session is active and measured against now. A
// malformed timestamp yields a session without a duration.
func DeriveSessions(starts []StartEvent, now time.Time) []Session {
	sessions := make([]Session, 0, len(starts))
	for i, start := range starts {
		session := Session{
			Category:   start.Category,
			Activity:   start.Activity,
			StartStamp: start.Timestamp,
			StartIndex: i,
		}
		if session.Category == "" {
			session.Category = "TASK"
		}
		if session.Activity == "" {
			session.Activity = "unknown"
		}

		startAt, startOK := parseStamp(start.Timestamp)
		var nextAt time.Time
		nextOK := false
		if i+1 < len(starts) {
			nextAt, nextOK = parseStamp(starts[i+1].Timestamp)
		}

		switch {
		case startOK && nextOK:
			session.DurationMin = clampMinutes(nextAt.Sub(startAt))
			session.HasDuration = true
			session.EndStamp = starts[i+1].Timestamp
			session.EndIndex = i
			session.Active = false
		case startOK:
			session.DurationMin = clampMinutes(now.Sub(startAt))
			session.HasDuration = true
			session.Display = FormatDuration(session.DurationMin)
			session.EndIndex = len(starts) - 1
			session.Active = true
		default:
			session.EndIndex = len(starts) - 1
			session.Active = i == len(starts)-1
		}

		sessions = append(sessions, session)
	}
	return sessions
}

// DeriveFromLog replays flat "START CATEGORY ACTIVITY" lines. The log
// carries no timestamps, so sessions have boundaries but no durations.
func DeriveFromLog(lines []string) []Session {
	var sessions []Session
	for idx, line := range lines {
		category, activity, ok := parseStartLine(line)
		if !ok {
			continue
		}
		if len(sessions) > 0 {
			sessions[len(sessions)-1].Active = false
			sessions[len(sessions)-1].EndIndex = idx - 1
		}
		sessions = append(sessions, Session{
			Category:   category,
			Activity:   activity,
			StartIndex: idx,
			Active:     true,
			RawLine:    line,
		})
	}
	if len(sessions) > 0 {
		sessions[len(sessions)-1].EndIndex = len(lines) - 1
	}
	return sessions
}

func parseStartLine(line string) (category, activity string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 3)
	if len(parts) < 3 || !strings.EqualFold(parts[0], "START") {
		return "", "", false
	}
	return strings.ToUpper(parts[1]), parts[2], true
}

func parseStamp(raw string) (time.Time, bool) {
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

func clampMinutes(d time.Duration) int {
	minutes := int(d.Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}

// FormatDuration renders minutes as "45m", "3h 20m" or "2d 1h 5m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours < 24 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	days := hours / 24
	hours = hours % 24
	return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
}
