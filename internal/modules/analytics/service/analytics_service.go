package service

import (
	"context"
	"strings"

	"tvp/internal/modules/analytics/domain"
	analyticsout "tvp/internal/modules/analytics/port/out"
	"tvp/internal/platform/clock"
)

// UnknownQueryHelp is the fixed reply for queries no pattern matches.
const UnknownQueryHelp = "I can tell you about your ratios, recent work, or activity summary. What would you like to know?"

const recentSessionLimit = 5

type Answer struct {
	Type      string
	Ratio     domain.RatioReport
	TimeSpent domain.TimeSpentReport
	Timeline  Timeline
	Summary   Summary
	Message   string
}

type Timeline struct {
	Recent []domain.Session
	Count  int
}

type Summary struct {
	Activities []string
}

type AnalyticsService struct {
	clock  clock.Clock
	events analyticsout.EventSource
}

func NewAnalyticsService(clk clock.Clock, events analyticsout.EventSource) *AnalyticsService {
	return &AnalyticsService{clock: clk, events: events}
}

// Sessions derives from the event table, falling back to master.log replay
// when the table has no start rows. Identical history always yields an
// identical session list.
func (s *AnalyticsService) Sessions(ctx context.Context) []domain.Session {
	starts, err := s.events.Starts(ctx)
	if err == nil && len(starts) > 0 {
		return domain.DeriveSessions(starts, s.clock.Now())
	}
	lines, err := s.events.MasterLines(ctx)
	if err != nil {
		return nil
	}
	return domain.DeriveFromLog(lines)
}

func (s *AnalyticsService) Ratios(ctx context.Context, timeframe string) domain.RatioReport {
	return domain.CalculateRatios(s.Sessions(ctx), timeframe)
}

func (s *AnalyticsService) TimeSpent(ctx context.Context, timeframe, category, activity string) domain.TimeSpentReport {
	return domain.CalculateTimeSpent(s.Sessions(ctx), timeframe, category, activity, s.clock.Now())
}

func (s *AnalyticsService) Timeline(ctx context.Context) Timeline {
	sessions := s.Sessions(ctx)
	window := sessions
	if len(window) > recentSessionLimit {
		window = window[len(window)-recentSessionLimit:]
	}
	recent := make([]domain.Session, 0, len(window))
	for i := len(window) - 1; i >= 0; i-- {
		recent = append(recent, window[i])
	}
	return Timeline{Recent: recent, Count: len(sessions)}
}

// Summary lists distinct activities in first-seen order.
func (s *AnalyticsService) Summary(ctx context.Context) Summary {
	sessions := s.Sessions(ctx)
	seen := make(map[string]struct{})
	var activities []string
	for _, session := range sessions {
		if _, ok := seen[session.Activity]; ok {
			continue
		}
		seen[session.Activity] = struct{}{}
		activities = append(activities, session.Activity)
	}
	return Summary{Activities: activities}
}

// AnswerQuery routes a natural-language question to one projection. The
// patterns are checked in a fixed priority order; a query matching several
// gets the first.
func (s *AnalyticsService) AnswerQuery(ctx context.Context, query, timeframe string) Answer {
	lowered := strings.ToLower(query)

	if strings.Contains(lowered, "ratio") {
		return Answer{Type: "ratio", Ratio: s.Ratios(ctx, timeframe)}
	}

	if strings.Contains(lowered, "how much time") ||
		strings.Contains(lowered, "time spent") ||
		strings.Contains(lowered, "spent on") {
		inferred := timeframe
		switch {
		case strings.Contains(lowered, "today"):
			inferred = "day"
		case strings.Contains(lowered, "week"):
			inferred = "week"
		case strings.Contains(lowered, "month"):
			inferred = "month"
		}

		category := ""
		for _, known := range []string{"theory", "practice", "task", "game"} {
			if strings.Contains(lowered, known) {
				category = known
				break
			}
		}

		activity := ""
		if category == "" {
			if idx := strings.LastIndex(lowered, " on "); idx >= 0 {
				activity = strings.TrimRight(strings.TrimSpace(lowered[idx+len(" on "):]), "?")
			}
		}

		return Answer{Type: "time_spent", TimeSpent: s.TimeSpent(ctx, inferred, category, activity)}
	}

	if strings.Contains(lowered, "yesterday") ||
		strings.Contains(lowered, "last") ||
		strings.Contains(lowered, "timeline") ||
		strings.Contains(lowered, "sessions") {
		return Answer{Type: "timeline", Timeline: s.Timeline(ctx)}
	}

	if strings.Contains(lowered, "what did i") ||
		strings.Contains(lowered, "work on") ||
		strings.Contains(lowered, "today") ||
		strings.Contains(lowered, "summary") {
		return Answer{Type: "summary", Summary: s.Summary(ctx)}
	}

	return Answer{Type: "unknown", Message: UnknownQueryHelp}
}
