package service

import (
	"context"
	"fmt"
	"time"

	"tvp/internal/modules/daily/domain"
	dailyout "tvp/internal/modules/daily/port/out"
	"tvp/internal/platform/clock"
	"tvp/internal/platform/markdown"
)

type DailyService struct {
	clock  clock.Clock
	events dailyout.EventSource
	notes  dailyout.NoteStore
}

func NewDailyService(clk clock.Clock, events dailyout.EventSource, notes dailyout.NoteStore) *DailyService {
	return &DailyService{clock: clk, events: events, notes: notes}
}

// SyncDate regenerates the note for one date. Notes are projections and
// safe to rewrite wholesale.
func (s *DailyService) SyncDate(ctx context.Context, date string) (string, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return "", fmt.Errorf("parse note date %q: %w", date, err)
	}
	events, err := s.events.ByDate(ctx, date)
	if err != nil {
		events = nil
	}

	body := domain.RenderDailyNote(day, events, s.clock.Now())
	content, err := markdown.RenderFrontmatter(map[string]any{
		"date":   date,
		"events": len(events),
	}, body)
	if err != nil {
		return "", err
	}
	return s.notes.Write(ctx, date, content)
}

func (s *DailyService) SyncToday(ctx context.Context) (string, error) {
	return s.SyncDate(ctx, s.clock.Now().Format("2006-01-02"))
}

func (s *DailyService) SyncAll(ctx context.Context) ([]string, error) {
	dates, err := s.events.Dates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list event dates: %w", err)
	}
	var updated []string
	for _, date := range dates {
		path, err := s.SyncDate(ctx, date)
		if err != nil {
			return updated, err
		}
		updated = append(updated, path)
	}
	return updated, nil
}
